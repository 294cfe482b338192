package logger

import (
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf strings.Builder
	quiet := New(&buf, false)
	quiet.Infof("hidden %d", 1)
	quiet.Errorf("shown %d", 2)

	expect := "huffzip: [ERROR] shown 2\n"
	if actual := buf.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}

	buf.Reset()
	loud := New(&buf, true)
	loud.Infof("visible %s", "info")

	expect = "huffzip: [INFO] visible info\n"
	if actual := buf.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}
