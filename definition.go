// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oed

import (
	"strings"

	"github.com/ianlewis/go-oed/entity"
)

// Resolve turns a raw definition into markup: entities are substituted and
// escaped apostrophes are unescaped.
func Resolve(raw string, entities *entity.Table) string {
	return strings.ReplaceAll(entities.Replace(raw), `\'`, "'")
}
