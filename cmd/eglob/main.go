// Command eglob enumerates files matching an extended glob pattern.
//
//	eglob '**/*.{ts,js}'
//	eglob --root /srv/app 'cache/*.py?'
//
// Quote the pattern so the shell does not expand it first.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginanjarn/eglob"
)

var log = logrus.New()

func main() {
	var (
		root    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "eglob PATTERN",
		Short:         "enumerate files matching an extended glob pattern",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(args[0], root)
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "directory to search (default: working directory)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log the match count")

	if err := cmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(pattern, root string) error {
	p, err := eglob.Compile(pattern)
	if err != nil {
		return err
	}

	count := 0
	err = p.IterGlob(root, func(path string) error {
		fmt.Println(path)
		count++
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "glob %q", pattern)
	}

	log.Debugf("found %d matching files", count)
	return nil
}
