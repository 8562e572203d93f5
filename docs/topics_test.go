package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTopics ensures every topic listed in readme.md can be loaded, and every
// topic file is listed in readme.md.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	require.NoError(t, err)
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	require.NoError(t, scanner.Err())

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			_, err := GetTopic(topic)
			assert.NoError(t, err)
		})
	}

	all, err := GetAllTopics()
	require.NoError(t, err)
	assert.ElementsMatch(t, all, topicsInReadme)
}

func TestGetTopic_Unknown(t *testing.T) {
	_, err := GetTopic("nope")
	assert.ErrorContains(t, err, `topic "nope" not found`)
}

func TestGetTopic_Commands(t *testing.T) {
	content, err := GetTopic("commands")
	require.NoError(t, err)
	for _, cmd := range []string{"add_hold", "add_target", "show", "suggest", "help", "exit"} {
		assert.Contains(t, content, cmd)
	}
}
