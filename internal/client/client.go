package client

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/danmuck/gridctl/internal/logging"
	"github.com/danmuck/gridctl/internal/observability"
	"github.com/danmuck/gridctl/internal/protocol"
	"github.com/danmuck/gridctl/internal/protocol/command"
	"github.com/danmuck/gridctl/internal/protocol/event"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Item is one result from the listener: a decoded Event, or Err for a line
// that failed to decode or for the loss of the connection. Line is the raw
// inbound text when there was one.
type Item struct {
	Event event.Event
	Err   error
	Line  string
}

// Status is a point-in-time view of the client.
type Status struct {
	Server       string `json:"server"`
	Connected    bool   `json:"connected"`
	ConnectionID string `json:"connection_id,omitempty"`
	NextTag      uint64 `json:"next_tag"`
}

// Client is a control connection manager. It is safe for concurrent use.
type Client struct {
	cfg     Config
	addr    string
	logger  zerolog.Logger
	journal *Journal

	// writeMu serializes writers across tag allocation and the socket write.
	// It is never held while waiting on mu, so Disconnect can always close a
	// socket a writer is blocked on.
	writeMu sync.Mutex

	mu     sync.Mutex
	conn   net.Conn
	connID string
	tag    uint64
	events chan Item
	stop   chan struct{}
	done   chan struct{}
}

// New validates cfg and returns a disconnected client. The server must be a
// literal IPv4 or IPv6 address.
func New(cfg Config) (*Client, error) {
	ip := net.ParseIP(cfg.Server)
	if ip == nil {
		return nil, newConnectionError(ErrKindInvalidAddress, nil, "%q is not an IP address", cfg.Server)
	}
	if cfg.ControlPort == 0 {
		return nil, newConnectionError(ErrKindInvalidAddress, nil, "control port must be non-zero")
	}
	if cfg.EventBuffer < 0 {
		cfg.EventBuffer = 0
	}

	logger := logging.Component("client")
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	c := &Client{
		cfg:     cfg,
		addr:    net.JoinHostPort(ip.String(), strconv.Itoa(int(cfg.ControlPort))),
		logger:  logger.With().Str("server", cfg.Server).Logger(),
		journal: NewJournal(cfg.JournalSize),
	}
	if cfg.UsesDefaultCredentials() {
		c.logger.Warn().Str("username", cfg.Username).Msg("using built-in example credentials")
	}
	return c, nil
}

func (c *Client) Config() Config { return c.cfg }

// Addr is the host:port the client dials.
func (c *Client) Addr() string { return c.addr }

func (c *Client) Journal() []JournalEntry { return c.journal.List() }

// LookupTag finds the journal entry for a tag sent on the current connection.
func (c *Client) LookupTag(tag uint64) (JournalEntry, bool) {
	c.mu.Lock()
	id := c.connID
	c.mu.Unlock()
	return c.journal.Lookup(id, tag)
}

func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := Status{Server: c.addr, Connected: c.conn != nil, NextTag: c.tag}
	if st.Connected {
		st.ConnectionID = c.connID
	}
	return st
}

// Events returns the item channel of the most recent connection, or nil
// before the first Connect. The channel is closed when that connection's
// listener exits.
func (c *Client) Events() <-chan Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events
}

// Connect dials the control port, resets the tag counter to 0 and starts the
// listener.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		return newConnectionError(ErrKindAlreadyConnected, nil, "%s", c.addr)
	}
	// A listener left over from a server-side close may still be draining.
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()
	stopListener(stop, done)

	dialer := net.Dialer{Timeout: c.cfg.ConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return newConnectionError(ErrKindConnectFailed, err, "dial %s", c.addr)
	}

	c.mu.Lock()
	if c.conn != nil {
		c.mu.Unlock()
		_ = conn.Close()
		return newConnectionError(ErrKindAlreadyConnected, nil, "%s", c.addr)
	}
	c.conn = conn
	c.connID = uuid.NewString()
	c.tag = 0
	c.events = make(chan Item, c.cfg.EventBuffer)
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	logger := c.logger.With().Str("conn", c.connID).Logger()
	go c.listen(conn, c.events, c.stop, c.done, logger)
	c.mu.Unlock()

	observability.SetConnected(true)
	logger.Info().Str("addr", c.addr).Msg("connected")
	return nil
}

// Disconnect closes the connection and waits for the listener to exit.
// It returns ErrNotConnected when there is no live connection.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	conn, stop, done := c.conn, c.stop, c.done
	c.conn, c.stop, c.done = nil, nil, nil
	c.mu.Unlock()

	if conn == nil {
		stopListener(stop, done)
		return newConnectionError(ErrKindNotConnected, nil, "disconnect")
	}
	_ = conn.Close()
	stopListener(stop, done)
	observability.SetConnected(false)
	c.logger.Info().Msg("disconnected")
	return nil
}

// Close disconnects if needed and always waits for any listener to exit.
// It is safe to call more than once.
func (c *Client) Close() error {
	if err := c.Disconnect(); err != nil && !errors.Is(err, ErrNotConnected) {
		return err
	}
	return nil
}

func stopListener(stop, done chan struct{}) {
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Send validates and encodes cmd, then writes it with the next tag.
// Validation failures are returned as *command.ValidationError and consume
// no tag.
func (c *Client) Send(cmd command.Command) (uint64, error) {
	if err := command.Validate(cmd); err != nil {
		return 0, err
	}
	return c.write(cmd.Name(), command.Encode(cmd))
}

// SendRaw writes line verbatim followed by the tag suffix. The line is not
// validated beyond rejecting empty text and embedded line breaks.
func (c *Client) SendRaw(line string) (uint64, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.ContainsAny(line, "\r\n") {
		return 0, ErrInvalidLine
	}
	name := "raw"
	if first := strings.Fields(line)[0]; knownCommand(first) {
		name = first
	}
	return c.write(name, line)
}

// Login sends Login with the configured credentials and protocol version.
func (c *Client) Login() (uint64, error) {
	login := command.NewLogin(c.cfg.Username, c.cfg.Password)
	login.ProtocolMajorVersion = command.Opt(c.cfg.ProtocolMajorVersion)
	login.ProtocolMinorVersion = command.Opt(c.cfg.ProtocolMinorVersion)
	return c.Send(login)
}

func (c *Client) write(name, line string) (uint64, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	conn, connID, tag := c.conn, c.connID, c.tag
	c.mu.Unlock()
	if conn == nil {
		return 0, newConnectionError(ErrKindNotConnected, nil, "send %s", name)
	}

	wire := line + " " + protocol.CommandTagKey + "=" + strconv.FormatUint(tag, 10) + protocol.LineTerminator
	if c.cfg.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	}
	if _, err := io.WriteString(conn, wire); err != nil {
		// A partial line may be on the wire; nothing written after it would
		// parse, so the connection is dropped.
		c.mu.Lock()
		own := c.conn == conn
		if own {
			c.conn = nil
		}
		c.mu.Unlock()
		_ = conn.Close()
		observability.RecordWriteError()
		if own {
			observability.SetConnected(false)
		}
		c.logger.Error().Err(err).Str("conn", connID).Str("command", name).Uint64("tag", tag).Msg("write failed, connection closed")
		return 0, newConnectionError(ErrKindWriteFailed, err, "send %s", name)
	}

	c.mu.Lock()
	if c.conn == conn {
		c.tag++
	}
	c.mu.Unlock()

	c.journal.Record(JournalEntry{ConnectionID: connID, Tag: tag, Command: name, SentAt: time.Now()})
	observability.RecordCommandSent(name)
	c.logger.Debug().Str("conn", connID).Uint64("tag", tag).Str("line", line).Msg("sent")
	return tag, nil
}

// listen is the only reader of conn. It exits on a read error or when stop
// is closed, closing events and then done.
func (c *Client) listen(conn net.Conn, events chan<- Item, stop <-chan struct{}, done chan<- struct{}, logger zerolog.Logger) {
	defer close(done)
	defer close(events)

	emit := func(item Item) bool {
		select {
		case events <- item:
			return true
		case <-stop:
			return false
		}
	}

	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 4096), protocol.MaxLineLength)
	for sc.Scan() {
		line := sc.Text()
		ev, err := event.Parse(line)
		switch {
		case err != nil:
			kind, _ := protocol.ParseErrorKindOf(err)
			observability.RecordParseError(kind.String())
			logger.Warn().Err(err).Str("line", line).Msg("unparseable line")
			if !emit(Item{Err: err, Line: line}) {
				return
			}
		case ev != nil:
			observability.RecordEventReceived(ev.Name())
			logger.Debug().Str("event", ev.Name()).Uint32("session", uint32(ev.Session())).Msg("received")
			if !emit(Item{Event: ev, Line: line}) {
				return
			}
		}
	}
	readErr := sc.Err()
	if readErr == nil {
		readErr = io.EOF
	}

	c.mu.Lock()
	own := c.conn == conn
	if own {
		c.conn = nil
	}
	c.mu.Unlock()
	if !own {
		// Disconnect or a failed write closed the socket.
		return
	}

	_ = conn.Close()
	observability.SetConnected(false)
	logger.Warn().Err(readErr).Msg("connection lost")
	emit(Item{Err: newConnectionError(ErrKindReadFailed, readErr, "listener")})
}

func knownCommand(name string) bool {
	_, ok := command.Lookup(name)
	return ok
}
