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


package storage

import (
	"github.com/mus-format/mus-go"
	"github.com/poiesic/materna/core"
)

// Marshal serializes a record using its MUS serializer.
func Marshal[T any](ser mus.Serializer[T], record *T) []byte {
	buf := make([]byte, ser.Size(*record))
	ser.Marshal(*record, buf)
	return buf
}

// Unmarshal deserializes a record using its MUS serializer.
func Unmarshal[T any](ser mus.Serializer[T], data []byte) (*T, error) {
	record, _, err := ser.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}
