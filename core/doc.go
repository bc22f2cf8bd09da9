// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package core defines the domain model of Materna: journal entries with
// mood tags, stored documents, medical records, development milestones,
// growth measurements, and the user profile.
//
// The package also carries the hand-written MUS serializers used by the
// storage layer and validation helpers enforcing the domain rules. User
// facing labels are Brazilian Portuguese; everything else is English.
package core
