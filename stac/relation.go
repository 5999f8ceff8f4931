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

// RelationType is the semantic role of a hyperlink between STAC entities.
//
// Relation comparisons are string based so that extension relation types
// not listed here still filter correctly. The constants below cover the
// relations defined by the STAC catalog and collection specifications.
type RelationType string

const (
	RelationAlternate   RelationType = "alternate"
	RelationCanonical   RelationType = "canonical"
	RelationChild       RelationType = "child"
	RelationCollection  RelationType = "collection"
	RelationConformance RelationType = "conformance"
	RelationData        RelationType = "data"
	RelationDerivedFrom RelationType = "derived_from"
	RelationDocs        RelationType = "docs"
	RelationItem        RelationType = "item"
	RelationLicense     RelationType = "license"
	RelationNext        RelationType = "next"
	RelationParent      RelationType = "parent"
	RelationPrev        RelationType = "prev"
	RelationPreview     RelationType = "preview"
	RelationRoot        RelationType = "root"
	RelationSearch      RelationType = "search"
	RelationSelf        RelationType = "self"
	RelationVia         RelationType = "via"
)

func (r RelationType) String() string {
	return string(r)
}
