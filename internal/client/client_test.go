package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danmuck/gridctl/internal/protocol"
	"github.com/danmuck/gridctl/internal/protocol/command"
	"github.com/danmuck/gridctl/internal/protocol/event"
	"github.com/danmuck/gridctl/internal/testutil/lineserver"
	"github.com/danmuck/gridctl/internal/testutil/testlog"
)

const itemTimeout = 5 * time.Second

func testConfig(srv *lineserver.Server) Config {
	cfg := DefaultConfig()
	cfg.Server = srv.Host()
	cfg.ControlPort = srv.Port()
	cfg.Username = "tester"
	cfg.Password = "secret"
	return cfg
}

func connectedClient(t *testing.T, srv *lineserver.Server, cfg Config) *Client {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	srv.WaitConn(t)
	return c
}

func nextItem(t *testing.T, ch <-chan Item) Item {
	t.Helper()
	select {
	case item, ok := <-ch:
		if !ok {
			t.Fatalf("event channel closed")
		}
		return item
	case <-time.After(itemTimeout):
		t.Fatalf("no item within %v", itemTimeout)
		return Item{}
	}
}

func waitClosed(t *testing.T, ch <-chan Item) {
	t.Helper()
	deadline := time.After(itemTimeout)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("event channel not closed within %v", itemTimeout)
		}
	}
}

func closedPort(t *testing.T) uint16 {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	_ = ln.Close()
	p, _ := strconv.Atoi(port)
	return uint16(p)
}

func TestNewValidatesAddress(t *testing.T) {
	testlog.Start(t)
	for _, addr := range []string{"127.0.0.1", "10.1.2.3", "::1", "fe80::1", "2001:db8::42"} {
		cfg := DefaultConfig()
		cfg.Server = addr
		if _, err := New(cfg); err != nil {
			t.Fatalf("New(%q) unexpected error: %v", addr, err)
		}
	}
	for _, addr := range []string{"", "localhost", "256.1.1.1", "1.2.3", "::g", "127.0.0.1:1234", " 127.0.0.1 ", "127.0.0.1\n"} {
		cfg := DefaultConfig()
		cfg.Server = addr
		_, err := New(cfg)
		if !errors.Is(err, ErrInvalidAddress) {
			t.Fatalf("New(%q) expected ErrInvalidAddress, got %v", addr, err)
		}
	}
}

func TestConnectFailedLeavesClientDisconnected(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultConfig()
	cfg.ControlPort = closedPort(t)
	cfg.ConnectTimeout = time.Second
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	err = c.Connect(context.Background())
	if !errors.Is(err, ErrConnectFailed) {
		t.Fatalf("expected ErrConnectFailed, got %v", err)
	}
	if c.Connected() {
		t.Fatalf("client should be disconnected")
	}
	if _, err := c.SendRaw("GetVersion"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestSendAssignsSequentialTags(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))

	const n = 5
	for i := 0; i < n; i++ {
		tag, err := c.Send(command.NewCallAnswer(protocol.ResourceID(i)))
		if err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
		if tag != uint64(i) {
			t.Fatalf("send %d got tag %d", i, tag)
		}
	}
	for i, line := range srv.Lines(t, n) {
		want := fmt.Sprintf("CallAnswer %d COMMANDTAG=%d", i, i)
		if line != want {
			t.Fatalf("line %d got=%q want=%q", i, line, want)
		}
	}
	if st := c.Status(); st.NextTag != n || !st.Connected || st.ConnectionID == "" {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestSendEncodesDefaults(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))

	if _, err := c.Send(command.NewCallMake(5, "1000")); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got, want := srv.NextLine(t), "CallMake 5 1000 Timeout=30000 Privacy=0 Screen=1 COMMANDTAG=0"; got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestLoginUsesConfiguredCredentials(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	cfg := testConfig(srv)
	cfg.ProtocolMinorVersion = 4
	c := connectedClient(t, srv, cfg)

	if _, err := c.Login(); err != nil {
		t.Fatalf("login: %v", err)
	}
	want := "Login tester secret ProtocolMajorVersion=2 ProtocolMinorVersion=4 COMMANDTAG=0"
	if got := srv.NextLine(t); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestValidationFailureConsumesNoTag(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))

	_, err := c.Send(command.NewPlayFile(1, "two words.wav"))
	var ve *command.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	tag, err := c.Send(command.NewPlayStop(1))
	if err != nil || tag != 0 {
		t.Fatalf("expected tag 0 after rejected send, got %d %v", tag, err)
	}
	if got := srv.NextLine(t); got != "PlayStop 1 COMMANDTAG=0" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestSendRawRejectsLineBreaks(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))

	for _, bad := range []string{"", "   ", "GetVersion\nQuit", "Get\rVersion"} {
		if _, err := c.SendRaw(bad); !errors.Is(err, ErrInvalidLine) {
			t.Fatalf("SendRaw(%q) expected ErrInvalidLine, got %v", bad, err)
		}
	}
	tag, err := c.SendRaw("  Custom thing=1 ")
	if err != nil || tag != 0 {
		t.Fatalf("raw send: tag=%d err=%v", tag, err)
	}
	if got := srv.NextLine(t); got != "Custom thing=1 COMMANDTAG=0" {
		t.Fatalf("unexpected line %q", got)
	}
}

var taggedLine = regexp.MustCompile(`^PlayFile (\d+) f(\d+)\.wav COMMANDTAG=(\d+)$`)

func TestConcurrentSendsNeverInterleave(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := c.Send(command.NewPlayFile(protocol.ResourceID(w), "f"+strconv.Itoa(i)+".wav")); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("send: %v", err)
	}

	seenTags := make(map[uint64]bool)
	nextPerWorker := make(map[string]int)
	var lastTag int64 = -1
	for _, line := range srv.Lines(t, workers*perWorker) {
		m := taggedLine.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("corrupted line %q", line)
		}
		tag, _ := strconv.ParseUint(m[3], 10, 64)
		if seenTags[tag] {
			t.Fatalf("duplicate tag %d", tag)
		}
		seenTags[tag] = true
		if int64(tag) != lastTag+1 {
			t.Fatalf("tags out of wire order: %d after %d", tag, lastTag)
		}
		lastTag = int64(tag)
		seq, _ := strconv.Atoi(m[2])
		if seq != nextPerWorker[m[1]] {
			t.Fatalf("worker %s lines reordered", m[1])
		}
		nextPerWorker[m[1]]++
	}
	if len(seenTags) != workers*perWorker {
		t.Fatalf("expected %d tags, got %d", workers*perWorker, len(seenTags))
	}
}

func TestEventsArriveInWireOrder(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))
	events := c.Events()

	srv.Push(t,
		"ESessionCreated 1",
		"",
		"   # keepalive",
		"EResourceCreated 1 7 # front-end",
		"EBogus 1 2",
		"ECallIncoming 1 7 CALL123 ANI=5551212 DNIS=1800 RemoteName=Bob",
		"ESessionCreated abc",
		"ECallCleared 1 7 Normal",
	)

	item := nextItem(t, events)
	if sc, ok := item.Event.(*event.SessionCreated); !ok || sc.SessionID != 1 {
		t.Fatalf("unexpected first item: %+v", item)
	}
	item = nextItem(t, events)
	if rc, ok := item.Event.(*event.ResourceCreated); !ok || rc.ResourceID != 7 {
		t.Fatalf("unexpected second item: %+v", item)
	}
	item = nextItem(t, events)
	if !errors.Is(item.Err, protocol.ErrUnknownEvent) || item.Line != "EBogus 1 2" {
		t.Fatalf("expected unknown event item, got %+v", item)
	}
	item = nextItem(t, events)
	ci, ok := item.Event.(*event.CallIncoming)
	if !ok || ci.CallIdentifier != "CALL123" || ci.RemoteName == nil || *ci.RemoteName != "Bob" {
		t.Fatalf("unexpected call incoming item: %+v", item)
	}
	item = nextItem(t, events)
	if !errors.Is(item.Err, protocol.ErrBadValue) {
		t.Fatalf("expected bad value item, got %+v", item)
	}
	item = nextItem(t, events)
	if _, ok := item.Event.(*event.CallCleared); !ok {
		t.Fatalf("listener stopped after parse errors: %+v", item)
	}
	if !c.Connected() {
		t.Fatalf("parse errors must not drop the connection")
	}
}

func TestDisconnectJoinsListenerAndClosesEvents(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	cfg := testConfig(srv)
	cfg.EventBuffer = 0
	c := connectedClient(t, srv, cfg)
	events := c.Events()

	// Nobody reads, so the listener is parked on the unbuffered channel.
	srv.Push(t, "ESessionCreated 1", "ESessionCreated 2")
	time.Sleep(50 * time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- c.Disconnect() }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("disconnect: %v", err)
		}
	case <-time.After(itemTimeout):
		t.Fatalf("disconnect did not return")
	}
	waitClosed(t, events)

	if err := c.Disconnect(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("second disconnect expected ErrNotConnected, got %v", err)
	}
	if _, err := c.Send(&command.GetVersion{}); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("send after disconnect expected ErrNotConnected, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close after disconnect: %v", err)
	}
}

func TestConnectTwiceFails(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))
	if err := c.Connect(context.Background()); !errors.Is(err, ErrAlreadyConnected) {
		t.Fatalf("expected ErrAlreadyConnected, got %v", err)
	}
}

func TestReconnectResetsTagsAndEventStream(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))
	first := c.Events()

	for i := 0; i < 3; i++ {
		if _, err := c.SendRaw("GetVersion"); err != nil {
			t.Fatalf("send: %v", err)
		}
	}
	srv.Lines(t, 3)
	if err := c.Disconnect(); err != nil {
		t.Fatalf("disconnect: %v", err)
	}
	waitClosed(t, first)

	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	srv.WaitConn(t)
	if c.Events() == first {
		t.Fatalf("expected a fresh event channel")
	}
	tag, err := c.SendRaw("GetVersion")
	if err != nil || tag != 0 {
		t.Fatalf("expected tag 0 after reconnect, got %d %v", tag, err)
	}
	if got := srv.NextLine(t); got != "GetVersion COMMANDTAG=0" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestServerHangupReportsReadFailed(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))
	events := c.Events()

	srv.Push(t, "ESessionCreated 9")
	if item := nextItem(t, events); item.Event == nil {
		t.Fatalf("expected event before hangup, got %+v", item)
	}
	srv.Hangup()

	item := nextItem(t, events)
	if !errors.Is(item.Err, ErrReadFailed) {
		t.Fatalf("expected ErrReadFailed, got %+v", item)
	}
	waitClosed(t, events)
	if c.Connected() {
		t.Fatalf("client should be disconnected after hangup")
	}
	if _, err := c.SendRaw("GetVersion"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}

	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("reconnect after hangup: %v", err)
	}
	srv.WaitConn(t)
}

// stalledPeer accepts connections and never reads from them.
func stalledPeer(t *testing.T) (uint16, <-chan net.Conn) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	var (
		mu       sync.Mutex
		accepted []net.Conn
	)
	conns := make(chan net.Conn, 4)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			accepted = append(accepted, conn)
			mu.Unlock()
			select {
			case conns <- conn:
			default:
			}
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, conn := range accepted {
			_ = conn.Close()
		}
	})
	_, port, _ := net.SplitHostPort(ln.Addr().String())
	p, _ := strconv.Atoi(port)
	return uint16(p), conns
}

var bulkLine = "PlayFile 1 " + strings.Repeat("x", 1<<20)

func TestWriteFailureDropsConnection(t *testing.T) {
	testlog.Start(t)
	port, conns := stalledPeer(t)
	cfg := DefaultConfig()
	cfg.ControlPort = port
	cfg.WriteTimeout = 200 * time.Millisecond
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	events := c.Events()
	var peer net.Conn
	select {
	case peer = <-conns:
	case <-time.After(itemTimeout):
		t.Fatalf("peer never accepted")
	}

	written := 0
	for ; written < 512; written++ {
		if _, err = c.SendRaw(bulkLine); err != nil {
			break
		}
	}
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed after %d lines, got %v", written, err)
	}
	if c.Connected() {
		t.Fatalf("client should be disconnected after a failed write")
	}
	if st := c.Status(); st.NextTag != uint64(written) {
		t.Fatalf("failed write consumed a tag: next=%d written=%d", st.NextTag, written)
	}
	if _, err := c.SendRaw("Logout"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected after failed write, got %v", err)
	}
	waitClosed(t, events)

	_ = peer.SetReadDeadline(time.Now().Add(itemTimeout))
	var received bytes.Buffer
	if _, err := received.ReadFrom(peer); err != nil {
		t.Fatalf("drain peer: %v", err)
	}
	if bytes.Contains(received.Bytes(), []byte("Logout")) {
		t.Fatalf("line sent after the failed write reached the peer")
	}
	if err := c.Disconnect(); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestDisconnectReleasesBlockedWriter(t *testing.T) {
	testlog.Start(t)
	port, conns := stalledPeer(t)
	cfg := DefaultConfig()
	cfg.ControlPort = port
	cfg.WriteTimeout = 0
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if err := c.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	select {
	case <-conns:
	case <-time.After(itemTimeout):
		t.Fatalf("peer never accepted")
	}

	var sent atomic.Int64
	writerErr := make(chan error, 1)
	go func() {
		for {
			if _, err := c.SendRaw(bulkLine); err != nil {
				writerErr <- err
				return
			}
			sent.Add(1)
		}
	}()

	// Wait until the writer stops making progress.
	deadline := time.Now().Add(itemTimeout)
	last := int64(-1)
	for time.Now().Before(deadline) {
		n := sent.Load()
		if n == last {
			break
		}
		last = n
		time.Sleep(200 * time.Millisecond)
	}

	statusDone := make(chan Status, 1)
	go func() { statusDone <- c.Status() }()
	select {
	case st := <-statusDone:
		if !st.Connected {
			t.Fatalf("expected connected while the writer is blocked")
		}
	case <-time.After(itemTimeout):
		t.Fatalf("Status blocked behind a stuck writer")
	}

	disconnected := make(chan error, 1)
	go func() { disconnected <- c.Disconnect() }()
	select {
	case err := <-disconnected:
		if err != nil {
			t.Fatalf("disconnect: %v", err)
		}
	case <-time.After(itemTimeout):
		t.Fatalf("Disconnect blocked behind a stuck writer")
	}

	select {
	case err := <-writerErr:
		if !errors.Is(err, ErrWriteFailed) && !errors.Is(err, ErrNotConnected) {
			t.Fatalf("unexpected writer error: %v", err)
		}
	case <-time.After(itemTimeout):
		t.Fatalf("writer still blocked after Disconnect")
	}
	if c.Connected() {
		t.Fatalf("client should be disconnected")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c := connectedClient(t, srv, testConfig(srv))
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestJournalRecordsWrittenLines(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	cfg := testConfig(srv)
	cfg.JournalSize = 2
	c := connectedClient(t, srv, cfg)

	for _, cmd := range []command.Command{&command.GetVersion{}, command.NewCallAnswer(1), command.NewCallHold(1)} {
		if _, err := c.Send(cmd); err != nil {
			t.Fatalf("send: %v", err)
		}
	}
	if _, err := c.SendRaw("Vendor 1"); err != nil {
		t.Fatalf("raw: %v", err)
	}
	entries := c.Journal()
	if len(entries) != 2 {
		t.Fatalf("expected bounded journal, got %d", len(entries))
	}
	if entries[0].Tag != 2 || entries[0].Command != "CallHold" || entries[1].Command != "raw" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if e, ok := c.LookupTag(3); !ok || e.Tag != 3 {
		t.Fatalf("lookup tag 3: %+v %v", e, ok)
	}
	if _, ok := c.LookupTag(0); ok {
		t.Fatalf("tag 0 should have been evicted")
	}
}

func TestNextBackoffDelayDeterministicNoJitter(t *testing.T) {
	testlog.Start(t)
	cfg := BackoffConfig{
		InitialDelay: 250 * time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     5 * time.Second,
	}
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 250 * time.Millisecond},
		{2, 500 * time.Millisecond},
		{3, time.Second},
		{6, 5 * time.Second},
	}
	for _, tt := range tests {
		if got := NextBackoffDelay(cfg, tt.attempt, nil); got != tt.want {
			t.Fatalf("attempt%d got=%v want=%v", tt.attempt, got, tt.want)
		}
	}
	cfg.Jitter = true
	if got := NextBackoffDelay(cfg, 2, nil); got != 250*time.Millisecond {
		t.Fatalf("jitter without rng got=%v", got)
	}
}

func TestConnectWithRetryGivesUp(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultConfig()
	cfg.ControlPort = closedPort(t)
	cfg.ConnectTimeout = time.Second
	cfg.Backoff = BackoffConfig{InitialDelay: 5 * time.Millisecond, Multiplier: 1}
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	start := time.Now()
	if err := c.ConnectWithRetry(context.Background(), 3); !errors.Is(err, ErrConnectFailed) {
		t.Fatalf("expected ErrConnectFailed, got %v", err)
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Fatalf("expected backoff between attempts")
	}
}

func TestConnectWithRetrySucceeds(t *testing.T) {
	testlog.Start(t)
	srv := lineserver.Start(t)
	c, err := New(testConfig(srv))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if err := c.ConnectWithRetry(context.Background(), 2); err != nil {
		t.Fatalf("connect: %v", err)
	}
	srv.WaitConn(t)
}
