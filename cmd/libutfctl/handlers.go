/*
Copyright 2021 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Icabod66/LibUTF/handler"
)

var handlersCmd = &cobra.Command{
	Use:                   "handlers",
	Short:                 "List every registered encoding variant and its resolved switches.",
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE:                  runHandlers,
}

func init() {
	rootCmd.AddCommand(handlersCmd)
}

func runHandlers(cmd *cobra.Command, args []string) error {
	for _, h := range handler.All() {
		cfg := h.Config
		fmt.Printf("%-10s family=%-5s unitSize=%d cesu=%-5v java=%-5v ucs2=%-5v ucs4=%-5v ascii=%-5v strict=%-5v coalesce=%-5v le=%v\n",
			h.Variant.String(), cfg.Family, h.UnitSize(),
			cfg.UseCesu, cfg.UseJava, cfg.UseUCS2, cfg.UseUCS4, cfg.UseASCII,
			cfg.Strict, cfg.Coalesce, cfg.LittleEndian)
	}
	return nil
}
