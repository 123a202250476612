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
	"github.com/Icabod66/LibUTF/handler"
)

var transcodeOptions = struct {
	In   string
	Out  string
	From string
	To   string
}{}

var transcodeCmd = &cobra.Command{
	Use:                   "transcode --in <file> --from <variant> --to <variant> --out <file>",
	Short:                 "Re-encode a file from one encoding variant to another.",
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE:                  runTranscode,
}

func init() {
	transcodeCmd.Flags().StringVar(&transcodeOptions.In, "in", "", "path to the source file")
	transcodeCmd.Flags().StringVar(&transcodeOptions.Out, "out", "", "path to the destination file")
	transcodeCmd.Flags().StringVar(&transcodeOptions.From, "from", "", "source encoding variant name")
	transcodeCmd.Flags().StringVar(&transcodeOptions.To, "to", "", "destination encoding variant name")
	for _, name := range []string{"in", "out", "from", "to"} {
		_ = transcodeCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(transcodeCmd)
}

func runTranscode(cmd *cobra.Command, args []string) error {
	src := handler.LookupByName(transcodeOptions.From)
	if src == nil {
		return errors.Errorf("unknown source variant %q, see 'libutfctl handlers'", transcodeOptions.From)
	}
	dst := handler.LookupByName(transcodeOptions.To)
	if dst == nil {
		return errors.Errorf("unknown destination variant %q, see 'libutfctl handlers'", transcodeOptions.To)
	}

	data, err := os.ReadFile(transcodeOptions.In)
	if err != nil {
		return errors.Wrapf(err, "reading %s", transcodeOptions.In)
	}

	sc := cursor.New(data)
	out := make([]byte, len(data)*4+int(dst.LenBOM())+int(dst.LenNull()))
	dc := cursor.New(out)

	if bomBytes, f := dst.SetBOM(dc); f.Failed() {
		return errors.Errorf("writing BOM: %s", f)
	} else {
		dc.Offset += bomBytes
	}

	n, flags := handler.Transcode(dst, dc, src, sc)
	glog.V(1).Infof("transcoded %d code points from %s to %s", n, src.Variant, dst.Variant)
	if flags.Failed() {
		return errors.Errorf("transcode failed after %d code points: %s", n, flags)
	}

	if nullBytes, f := dst.SetNull(dc); !f.Failed() {
		dc.Offset += nullBytes
	}

	if err := os.WriteFile(transcodeOptions.Out, dc.Buffer[:dc.Offset], 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", transcodeOptions.Out)
	}
	fmt.Printf("wrote %d bytes (%d code points) to %s\n", dc.Offset, n, transcodeOptions.Out)
	return nil
}
