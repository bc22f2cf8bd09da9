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


// Package storage defines the persistence contracts for the five record
// families and the user profile, plus MUS serialization helpers shared by
// backends.
//
// The five families (journal, documents, medical, milestones, growth) share
// a single generic repository shape, RecordRepository[T]; concrete backends
// live in sub-packages (storage/badger).
package storage
