// Copyright 2025 Ian Lewis
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

package main

import (
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	oed "github.com/ianlewis/go-oed"
)

var infoCommand = &cli.Command{
	Name:  "info",
	Usage: "print information about the corpus",
	Action: func(c *cli.Context) error {
		corpus, err := openCorpus(c, newLogger(c))
		if err != nil {
			return err
		}
		return printInfo(c, corpus)
	},
}

func printInfo(c *cli.Context, corpus *oed.Corpus) error {
	index, err := corpus.Index()
	if err != nil {
		//nolint:wrapcheck // corpus errors carry their own context.
		return err
	}

	m := corpus.Meta()
	keys := "none"
	if corpus.HasKeys() {
		keys = m.Files.Keys
	}

	tbl := table.New("Field", "Value").WithWriter(c.App.Writer)
	tbl.AddRow("Name", corpus.Name())
	tbl.AddRow("Copyright", corpus.Copyright())
	tbl.AddRow("Headword index", m.Files.Headwords)
	tbl.AddRow("Key index", keys)
	tbl.AddRow("Data", m.Files.Data)
	tbl.AddRow("Headwords", index.Len())
	tbl.AddRow("Entries", corpus.Entries())
	tbl.AddRow("Blocks", corpus.Blocks())
	tbl.AddRow("Entities", corpus.Entities().Len())
	tbl.Print()
	return nil
}
