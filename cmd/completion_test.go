package cmd

import (
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		assert.Contains(t, c.Sub, cmd.Name())
	}
	assert.NotNil(t, c.Sub["topic"].Args)

	// every global flag can be completed.
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		if strings.HasPrefix(f.Name, "test.") {
			return
		}
		assert.Contains(t, c.Flags, f.Name)
	})
}
