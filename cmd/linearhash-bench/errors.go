package main

import "errors"

var errInvalidConfig = errors.New("linearhash-bench: invalid configuration")
