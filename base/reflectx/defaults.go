// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for configuration structs.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"cogentcore.org/lines/base/errors"
)

// SetFromDefaultTags sets the fields of the given struct pointer
// from their `default:` struct field tag values. Struct fields without
// a tag are set recursively. Fields that cannot be set are skipped and
// reported in the returned error.
func SetFromDefaultTags(obj any) error {
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return nil
	}
	val := ov.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: %T is not a pointer to a struct", obj)
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if f.Type.Kind() == reflect.Struct && (!ok || def == "") {
			if err := SetFromDefaultTags(fv.Addr().Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok || def == "" {
			continue
		}
		if err := SetString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

var durationType = reflect.TypeFor[time.Duration]()

// SetString sets the given settable value from its string form.
func SetString(v reflect.Value, s string) error {
	if v.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
