package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/olimci/cmake-init/pkg/options"
	"github.com/olimci/cmake-init/pkg/version"
)

func runVersion(out io.Writer) error {
	_, err := fmt.Fprintf(out, "cmake-init version %s (cmake >= %s, presets v%d)\n",
		Version, version.DefaultCMake, version.PresetSchema)
	return err
}

func runStandards(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "LANGUAGE\tSTANDARD\tFEATURE\t")
	for _, s := range options.CStandards() {
		if err := standardRow(tw, "C", s.Name, s.FeatureToken, s == options.DefaultCStandard); err != nil {
			return err
		}
	}
	for _, s := range options.CXXStandards() {
		if err := standardRow(tw, "C++", s.Name, s.FeatureToken, s == options.DefaultCXXStandard); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func standardRow(w io.Writer, lang string, name, token func() (string, error), isDefault bool) error {
	n, err := name()
	if err != nil {
		return err
	}
	t, err := token()
	if err != nil {
		return err
	}

	suffix := ""
	if isDefault {
		suffix = "(default)"
	}
	_, err = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", lang, n, t, suffix)
	return err
}
