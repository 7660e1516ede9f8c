package log

import (
	"sync"
	"time"

	"gopkg.in/Sirupsen/logrus.v0"
)

// EntryZ is an allocation-free structured log entry. Methods are nil-safe: a
// disabled module returns a nil *EntryZ and the whole chain becomes no-ops.
type EntryZ struct {
	mod   Module
	lvl   Level
	msg   string
	zfidx int
	zfbuf [16]ZField
}

var entryzPool = sync.Pool{
	New: func() any { return new(EntryZ) },
}

func NewEntryZ() *EntryZ {
	e := entryzPool.Get().(*EntryZ)
	e.zfidx = 0
	return e
}

func (e *EntryZ) field(typ FieldType, key string) *ZField {
	if e.zfidx >= len(e.zfbuf) {
		panic("too many fields in log entry")
	}
	f := &e.zfbuf[e.zfidx]
	e.zfidx++
	*f = ZField{Type: typ, Key: key}
	return f
}

func (e *EntryZ) String(key, val string) *EntryZ {
	if e != nil {
		e.field(FieldTypeString, key).String = val
	}
	return e
}

func (e *EntryZ) Bool(key string, val bool) *EntryZ {
	if e != nil {
		e.field(FieldTypeBool, key).Boolean = val
	}
	return e
}

func (e *EntryZ) Int(key string, val int64) *EntryZ {
	if e != nil {
		e.field(FieldTypeInt, key).Integer = uint64(val)
	}
	return e
}

func (e *EntryZ) Uint(key string, val uint64) *EntryZ {
	if e != nil {
		e.field(FieldTypeUint, key).Integer = val
	}
	return e
}

func (e *EntryZ) Hex8(key string, val uint8) *EntryZ {
	if e != nil {
		e.field(FieldTypeHex8, key).Integer = uint64(val)
	}
	return e
}

func (e *EntryZ) Hex16(key string, val uint16) *EntryZ {
	if e != nil {
		e.field(FieldTypeHex16, key).Integer = uint64(val)
	}
	return e
}

func (e *EntryZ) Error(key string, err error) *EntryZ {
	if e != nil {
		e.field(FieldTypeError, key).Error = err
	}
	return e
}

func (e *EntryZ) Duration(key string, d time.Duration) *EntryZ {
	if e != nil {
		e.field(FieldTypeDuration, key).Duration = d
	}
	return e
}

func (e *EntryZ) Stringer(key string, val interface{ String() string }) *EntryZ {
	if e != nil {
		e.field(FieldTypeStringer, key).Interface = val
	}
	return e
}

func (e *EntryZ) Blob(key string, val []byte) *EntryZ {
	if e != nil {
		e.field(FieldTypeBlob, key).Blob = val
	}
	return e
}

// End flushes the entry and recycles it. It must be the last call of the
// chain.
func (e *EntryZ) End() {
	if e == nil {
		return
	}

	fields := make(logrus.Fields, e.zfidx+1)
	fields["_mod"] = modNames[e.mod]
	for i := range e.zfbuf[:e.zfidx] {
		fields[e.zfbuf[i].Key] = e.zfbuf[i].Value()
	}

	entry := logrus.StandardLogger().WithFields(fields)
	lvl := e.lvl
	msg := e.msg
	entryzPool.Put(e)

	switch lvl {
	case DebugLevel:
		entry.Debug(msg)
	case InfoLevel:
		entry.Info(msg)
	case WarnLevel:
		entry.Warn(msg)
	case ErrorLevel:
		entry.Error(msg)
	case FatalLevel:
		entry.Fatal(msg)
	case PanicLevel:
		entry.Panic(msg)
	}
}
