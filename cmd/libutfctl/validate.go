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
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Icabod66/LibUTF/cursor"
	"github.com/Icabod66/LibUTF/diag"
	"github.com/Icabod66/LibUTF/handler"
	"github.com/Icabod66/LibUTF/internal/xtextbridge"
	"github.com/Icabod66/LibUTF/variant"
)

var validateOptions = struct {
	In         string
	Variant    string
	CrossCheck bool
}{}

var validateCmd = &cobra.Command{
	Use:                   "validate --in <file> --variant <name>",
	Short:                 "Scan a file for encoding errors under a named variant.",
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE:                  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateOptions.In, "in", "", "path to the file to validate")
	validateCmd.Flags().StringVar(&validateOptions.Variant, "variant", variant.UTF8.String(), "encoding variant name, see 'libutfctl handlers'")
	validateCmd.Flags().BoolVar(&validateOptions.CrossCheck, "cross-check", false, "for UTF-16 variants, additionally cross-check against golang.org/x/text")
	_ = validateCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	h := handler.LookupByName(validateOptions.Variant)
	if h == nil {
		return errors.Errorf("unknown variant %q, see 'libutfctl handlers'", validateOptions.Variant)
	}

	data, err := os.ReadFile(validateOptions.In)
	if err != nil {
		return errors.Wrapf(err, "reading %s", validateOptions.In)
	}

	c := cursor.New(data)
	flags := h.Validate(c)
	glog.V(1).Infof("validated %d bytes as %s", len(data), h.Variant)

	if validateOptions.CrossCheck && h.Config.Family == variant.UTF16Family {
		if _, err := xtextbridge.DecodeUTF16(data, h.Config.LittleEndian); err != nil {
			fmt.Printf("cross-check (golang.org/x/text): %v\n", err)
		} else {
			fmt.Println("cross-check (golang.org/x/text): agrees, no error")
		}
	}

	if flags&^diag.ReadExhausted == 0 {
		fmt.Println("no issues found")
		return nil
	}
	fmt.Printf("diagnostics: %s\n", flags)
	if flags.Failed() {
		return errors.New("validation failed")
	}
	return nil
}
