package main

import (
	"io"
	"os"

	"github.com/inconshreveable/log15"

	"github.com/spikeekips/alexandria/common"
)

var log log15.Logger = log15.New("module", "alex")

func setLogging(s *settings, w io.Writer) error {
	var out *os.File
	if f, ok := w.(*os.File); ok {
		out = f
	}

	format, err := common.LogFormatter(s.logFormat.String(), out)
	if err != nil {
		return err
	}

	handler, err := common.LogHandler(format, w, s.logOut)
	if err != nil {
		return err
	}
	handler = log15.CallerFileHandler(handler)

	common.SetLogger(log, s.logLevel.lvl, handler)

	return nil
}
