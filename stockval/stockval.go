// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import "strings"

// SourceId identifies a bar data source implementation.
type SourceId string

const ParquetFileSuffix = ".parquet"

// IsParquetSource reports whether the source string names a local parquet bar file.
func IsParquetSource(source string) bool {
	return strings.HasSuffix(strings.ToLower(source), ParquetFileSuffix)
}
