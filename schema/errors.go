// Copyright 2026 The Tombi Authors
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

package schema

import "fmt"

// ErrorKind enumerates the store-level failures named in spec.md
// Section 7's "Schema-store errors" group that aren't already their own
// Go error type (DefinitionNotFoundError is, since Referable.Resolve
// needs to type-switch on it).
type ErrorKind int

const (
	CatalogPathConvertUrlFailed ErrorKind = iota
	CatalogUrlFetchFailed
	CatalogFileReadFailed
	SchemaFileNotFound
	SchemaFileReadFailed
	SchemaFileParseFailed
	SchemaFetchFailed
	UnsupportedSchemaUrl
	InvalidSchemaUrl
	UnsupportedReference
)

var errorMessages = map[ErrorKind]string{
	CatalogPathConvertUrlFailed: "could not convert catalog path to a URL",
	CatalogUrlFetchFailed:       "failed to fetch schema catalog",
	CatalogFileReadFailed:       "failed to read schema catalog file",
	SchemaFileNotFound:          "schema file not found",
	SchemaFileReadFailed:        "failed to read schema file",
	SchemaFileParseFailed:       "failed to parse schema file",
	SchemaFetchFailed:           "failed to fetch schema",
	UnsupportedSchemaUrl:        "unsupported schema url",
	InvalidSchemaUrl:            "invalid schema url",
	UnsupportedReference:        "unsupported $ref form",
}

// Error is a store-level diagnostic not tied to a source range (unlike
// document/validator diagnostics, schema loading failures happen before
// there is a document to point into).
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	msg := errorMessages[e.Kind]
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

func newError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}
