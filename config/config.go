/*
 * rusformula
 *
 * Copyright 2026 The rusformula Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

/*
ProductVersion is the current version of rusformula.
*/
const ProductVersion = "1.0.0"

/*
Known configuration keys.
*/
const (
	Precision    = "Precision"
	Epsilon      = "Epsilon"
	IndentWidth  = "IndentWidth"
	MaxLetters   = "MaxLetters"
)

/*
DefaultConfig holds the engine's evaluation constants: the decimal digit
count float results are rounded to, the absolute tolerance used for
numeric equality, the indent width used by the surface serializer, and the
source-length cap enforced by the lexer.
*/
var DefaultConfig = map[string]interface{}{
	Precision:   5,
	Epsilon:     1e-9,
	IndentWidth: 4,
	MaxLetters:  100000,
}

/*
Config is the actual configuration in effect. Callers may overwrite entries
before running an evaluation to change rounding precision or the size cap.
*/
var Config map[string]interface{}

func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}
	Config = data
}

/*
Str reads a config value as a string.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Float reads a config value as a float64.
*/
func Float(key string) float64 {
	ret, err := strconv.ParseFloat(fmt.Sprint(Config[key]), 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("could not parse config key %v: %v", key, err))

	return ret
}
