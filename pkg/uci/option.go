package uci

import (
	"errors"
	"fmt"
	"strconv"
)

var errOutOfRange = errors.New("argument out of range")

type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type BoolOption struct {
	Name     string
	Value    *bool
	OnChange func(v bool) error
}

func (opt *BoolOption) UciName() string {
	return opt.Name
}

func (opt *BoolOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "check", *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if opt.OnChange != nil {
		if err := opt.OnChange(v); err != nil {
			return err
		}
	}
	*opt.Value = v
	return nil
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) UciName() string {
	return opt.Name
}

func (opt *IntOption) UciString() string {
	return fmt.Sprintf("option name %v type %v default %v min %v max %v",
		opt.Name, "spin", *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return fmt.Errorf("%v %v: %w", opt.Name, v, errOutOfRange)
	}
	*opt.Value = v
	return nil
}

// StringOption calls OnChange before storing the new value, a failing
// OnChange keeps the old one.
type StringOption struct {
	Name     string
	Value    *string
	OnChange func(v string) error
}

func (opt *StringOption) UciName() string {
	return opt.Name
}

func (opt *StringOption) UciString() string {
	var v = *opt.Value
	if v == "" {
		v = "<empty>"
	}
	return fmt.Sprintf("option name %v type %v default %v",
		opt.Name, "string", v)
}

func (opt *StringOption) Set(s string) error {
	if s == "<empty>" {
		s = ""
	}
	if opt.OnChange != nil {
		if err := opt.OnChange(s); err != nil {
			return err
		}
	}
	*opt.Value = s
	return nil
}
