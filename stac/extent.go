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

// Extent describes the spatial and temporal coverage of a Collection.
// Spatial holds bounding boxes of 4 or 6 numbers; Temporal holds
// open-or-closed time intervals, a nil bound meaning unbounded.
type Extent struct {
	Spatial  [][]float64
	Temporal [][]*string
}

// NewExtent builds an Extent from the raw "extent" object of a
// collection document. Both extent.spatial.bbox and
// extent.temporal.interval are required.
func NewExtent(data map[string]any) (*Extent, error) {
	if data == nil {
		return nil, &MissingFieldError{Field: "extent"}
	}

	bbox, ok := objectField(data, "spatial")["bbox"]
	if !ok {
		return nil, &MissingFieldError{Field: "extent.spatial.bbox"}
	}
	interval, ok := objectField(data, "temporal")["interval"]
	if !ok {
		return nil, &MissingFieldError{Field: "extent.temporal.interval"}
	}

	extent := &Extent{}
	if err := decodeInto(bbox, &extent.Spatial); err != nil {
		return nil, err
	}
	if err := decodeInto(interval, &extent.Temporal); err != nil {
		return nil, err
	}

	return extent, nil
}
