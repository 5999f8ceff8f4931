// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stac

import (
	"errors"
	"fmt"
)

// ErrNoResolver is returned by Link.Resource when the link was built
// without a resolver and therefore cannot dereference its href.
var ErrNoResolver = errors.New("stac: link has no resolver attached")

// MissingFieldError reports a required document field that is absent.
// Fields are never checked eagerly; the error surfaces on first access.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("stac: missing required field: %s", e.Field)
}

// NoLinkFoundError reports a mandatory relation filter that matched
// zero links.
type NoLinkFoundError struct {
	Rel RelationType
}

func (e *NoLinkFoundError) Error() string {
	return fmt.Sprintf("stac: no link found with relationship: %s", e.Rel)
}

// AmbiguousLinkError reports a single-cardinality relation filter that
// matched more than one link.
type AmbiguousLinkError struct {
	Rel RelationType
}

func (e *AmbiguousLinkError) Error() string {
	return fmt.Sprintf("stac: found more than one link with relationship: %s", e.Rel)
}
