package config

import "errors"

var (
	ErrConfigBuild       = errors.New("config build error")
	ErrConfigMerge       = errors.New("config merge error")
	ErrConfigValidation  = errors.New("config validation error")
	ErrEnvConfigLoad     = errors.New("env config load error")
	ErrFlagsConfigLoad   = errors.New("flags config load error")
	ErrJSONConfigLoad    = errors.New("json config load error")
	ErrInvalidNetAddress = errors.New("invalid network address")
	ErrInvalidDuration   = errors.New("invalid duration")
)
