package servers_test

import (
	"sort"
	"strings"
	"testing"

	"eats/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoPath converts an OpenAPI path template to echo's :param form.
func echoPath(path string) string {
	path = strings.ReplaceAll(path, "{", ":")
	return strings.ReplaceAll(path, "}", "")
}

func TestRegisterHandlers_MatchesDocument(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	var documented []string
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented = append(documented, method+" "+echoPath(path))
		}
	}

	e := echo.New()
	servers.RegisterHandlers(e, servers.ServerInterface(nil))
	var registered []string
	for _, r := range e.Routes() {
		registered = append(registered, r.Method+" "+r.Path)
	}

	sort.Strings(documented)
	sort.Strings(registered)
	assert.Equal(t, documented, registered)
}
