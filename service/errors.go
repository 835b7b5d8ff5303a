/*
 * Copyright 2025 inmobilia.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package service

import "errors"

// ErrInvalidInput marks caller-supplied values that violate a precondition
// (negative price, negative price-range bound, nil model). It is detected
// before any persistence call, so no partial state change can occur.
//
// Absence is not an error: lookups and mutations against a missing id return
// a nil result instead.
var ErrInvalidInput = errors.New("invalid input")
