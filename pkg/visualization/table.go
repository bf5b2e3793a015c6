// Copyright (c) 2017 Intel Corporation
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

package visualization

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table is a model for data.
type Table struct {
	title   string
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers: headers,
		data:    data,
	}
}

// WithTitle sets a line printed above the table.
func (t *Table) WithTitle(title string) *Table {
	t.title = title
	return t
}

// Rows returns number of data rows.
func (t *Table) Rows() int {
	return len(t.data)
}

// DrawTable draws a struct with headers and data rows.
func DrawTable(w io.Writer, table *Table) error {
	if table.title != "" {
		if _, err := fmt.Fprintln(w, table.title); err != nil {
			return err
		}
	}
	output := tablewriter.NewWriter(w)
	output.SetHeader(table.headers)
	output.SetAutoFormatHeaders(false)
	for _, v := range table.data {
		output.Append(v)
	}
	output.Render()
	return nil
}
