// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package serializer reads and writes gridcraft documents.
//
// # Formats
//
//   - JSON: indented, machine readable
//   - YAML: the format grid files are usually written in
//   - Table: human readable, write only
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// An empty path writes to stdout. The table format only accepts values
// implementing Tabular.
//
// # Reading
//
//	spec, err := serializer.FromFile[grid.Spec]("torch.yaml")
//
// The format is chosen from the file extension (.json, .yaml, .yml).
package serializer
