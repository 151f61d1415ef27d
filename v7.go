package uuidx

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

const (
	maxClockSeq  = 0xFFF
	maxTimestamp = 1<<48 - 1
)

// Generator is a thread-safe UUIDv7 generator. Successive calls on the same
// Generator return strictly increasing UUIDs, even when the clock stalls or
// moves backwards.
type Generator struct {
	mu            sync.Mutex
	lastTimestamp uint64
	clockSeq      uint16 // 12-bit counter for sub-millisecond ordering
	randReader    io.Reader
	now           func() time.Time
	logger        *slog.Logger
}

// NewGenerator creates a new UUIDv7 generator. Without options it reads
// crypto/rand, uses time.Now and does not log.
func NewGenerator(opts ...Option) *Generator {
	cfg := applyOptions(defaultOptions(), opts...)
	return &Generator{
		randReader: cfg.randReader,
		now:        cfg.clock,
		logger:     cfg.logger,
	}
}

// NewGeneratorWithReader creates a new UUIDv7 generator with a custom random source.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGenerator(WithRandReader(r))
}

// New generates a new UUIDv7 with the generator's current time.
func (g *Generator) New() (UUID, error) {
	return g.NewWithTime(g.now())
}

// NewWithTime generates a new UUIDv7 embedding t in milliseconds. If t is not
// after the last issued millisecond, the last millisecond is reused and the
// counter incremented; a counter overflow advances the embedded millisecond.
// Times before the Unix epoch or past the 48-bit millisecond range are
// rejected without touching the generator state.
func (g *Generator) NewWithTime(t time.Time) (UUID, error) {
	var u UUID

	ms := t.UnixMilli()
	if ms < 0 || ms > maxTimestamp {
		return u, NewCustom(fmt.Sprintf("timestamp %d ms outside the 48-bit UUIDv7 range", ms))
	}
	timestamp := uint64(ms)

	g.mu.Lock()
	defer g.mu.Unlock()

	if timestamp <= g.lastTimestamp {
		if timestamp < g.lastTimestamp {
			g.logger.Debug("uuidx: clock behind last issued timestamp",
				slog.Uint64("timestamp", timestamp),
				slog.Uint64("last_timestamp", g.lastTimestamp))
		}
		timestamp = g.lastTimestamp
		g.clockSeq++
		if g.clockSeq > maxClockSeq {
			if timestamp == maxTimestamp {
				g.clockSeq = maxClockSeq
				return u, NewCustom("clock sequence exhausted at the last UUIDv7 millisecond")
			}
			g.clockSeq = 0
			timestamp++
			g.lastTimestamp = timestamp
			g.logger.Debug("uuidx: clock sequence overflow, advancing timestamp",
				slog.Uint64("timestamp", timestamp))
		}
	} else {
		// rand_a is reseeded every millisecond
		var randBytes [2]byte
		if _, err := io.ReadFull(g.randReader, randBytes[:]); err != nil {
			return u, NewIO(err)
		}
		g.clockSeq = binary.BigEndian.Uint16(randBytes[:]) & maxClockSeq
		g.lastTimestamp = timestamp
	}

	// 48-bit timestamp in bytes 0-5; bytes 6-7 are overwritten below
	binary.BigEndian.PutUint64(u[0:8], timestamp<<16)

	u[6] = byte(0x70 | (g.clockSeq >> 8))
	u[7] = byte(g.clockSeq)

	if _, err := io.ReadFull(g.randReader, u[8:]); err != nil {
		return u, NewIO(err)
	}

	// RFC 9562 variant (10xx xxxx)
	u[8] = (u[8] & 0x3F) | 0x80

	return u, nil
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuidx.Must(uuidx.NewV7())
func Must(u UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return u
}

var defaultGenerator = NewGenerator()

// New generates a new UUIDv7 using the package-level generator.
func New() (UUID, error) {
	return defaultGenerator.New()
}

// NewV7 is an alias for New() for explicit version specification
func NewV7() (UUID, error) {
	return defaultGenerator.New()
}

// IsV7 reports whether u carries version 7.
func (u UUID) IsV7() bool {
	return u.Version() == VersionTimeSorted
}

// ToTimeEpochMs returns the millisecond Unix timestamp embedded in a UUIDv7.
// The value is the top 48 bits of u read big-endian, so it is never negative.
// For any other version it returns a KindNotV7 *Error holding u.
func ToTimeEpochMs(u UUID) (int64, error) {
	if !u.IsV7() {
		return 0, &Error{Kind: KindNotV7, UUID: u}
	}

	var buf [8]byte
	copy(buf[2:], u[0:6])
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

// Timestamp is the method form of ToTimeEpochMs.
func (u UUID) Timestamp() (int64, error) {
	return ToTimeEpochMs(u)
}

// Time returns the embedded timestamp of a UUIDv7 as a UTC time.Time.
func (u UUID) Time() (time.Time, error) {
	ms, err := ToTimeEpochMs(u)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}
