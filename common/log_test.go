package common

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/suite"
)

type testLog struct {
	suite.Suite
}

func (t *testLog) TestJSONFormat() {
	buf := &bytes.Buffer{}

	format, err := LogFormatter("json", nil)
	t.NoError(err)

	handler, err := LogHandler(format, buf, "")
	t.NoError(err)

	logger := log15.New("module", "test")
	SetLogger(logger, log15.LvlInfo, handler)

	logger.Debug("filtered")
	logger.Info("showme", "error", NotImplementedError, "version", MustParseVersion("1.2.3"), "a < b", 1)

	var m map[string]interface{}
	t.NoError(json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m))

	t.Equal("showme", m["msg"])
	t.Equal("info", m["lvl"])
	t.Equal("test", m["module"])
	t.Equal("1.2.3", m["version"])
	t.Equal(float64(1), m["a < b"])
	t.Equal(map[string]interface{}{"code": "common-1", "message": "not implemented"}, m["error"])
	t.NotContains(buf.String(), "filtered")
}

func (t *testLog) TestTerminalFormat() {
	format, err := LogFormatter("terminal", nil)
	t.NoError(err)
	t.NotNil(format)

	_, err = LogFormatter("xml", nil)
	t.Error(err)
}

func TestLog(t *testing.T) {
	suite.Run(t, new(testLog))
}
