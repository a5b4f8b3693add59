package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Now().Unix()
	err = fmt.Errorf("error message")
)

// Fatal Fatalf is not test
func TestLogger(t *testing.T) {
	SetLogger(LevelTrace, false, true)
	assert.Equal(t, LevelTrace, GetLevel())

	WithFields("timestamp", now, "err", err).Tracef("test WithFields Tracef at %v", now)
	WithFields("timestamp", now, "err", err).Infof("test WithFields Infof at %v", now)
	assert.Panics(t, func() { WithFields("timestamp", now, "err", err).Panicf("test WithFields Panicf at %v", now) }, "not panic")

	Trace("test Trace", "timestamp", now, "err", err)
	Tracef("test Tracef, timestamp=%v err=%v", now, err)
	Debug("test Debug", "timestamp", now, "err", err)
	Debugf("test Debugf, timestamp=%v err=%v", now, err)
	Info("test Info", "timestamp", now, "err", err)
	Infof("test Infof, timestamp=%v err=%v", now, err)
	Print("test Print ", "timestamp", now, " err ", err)
	Printf("test Printf, timestamp=%v err=%v", now, err)
	Println("test Println", "timestamp", now, "err", err)
	Warn("test Warn", "timestamp", now, "err", err)
	Warnf("test Warnf, timestamp=%v err=%v", now, err)
	Error("test Error", "timestamp", now, "err", err)
	Errorf("test Errorf, timestamp=%v err=%v", now, err)

	assert.Panics(t, func() { Panic("test Panic", "timestamp", now, "err", err) }, "not panic")
	assert.Panics(t, func() { Panicf("test Panicf, timestamp=%v err=%v", now, err) }, "not panic")

	// odd number of fields and non string key
	Info("test odd fields", "address")
	Info("test bad key", 1, 2)

	SetLogger(100, false, false)
	assert.Equal(t, LevelTrace, GetLevel())
}

func TestJSONLogger(t *testing.T) {
	SetLogger(LevelInfo, true, false)
	defer SetLogger(LevelInfo, false, false)
	assert.True(t, JSONFormat)

	var buf bytes.Buffer
	SetOutput(&buf)
	Info("decoded address", "kind", "AccountID", "length", 20)
	Debug("not written")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "decoded address", entry["msg"])
	assert.Equal(t, "AccountID", entry["kind"])
	assert.Equal(t, float64(20), entry["length"])
	assert.Equal(t, "info", entry["level"])
}
