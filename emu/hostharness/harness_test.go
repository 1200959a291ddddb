package hostharness

import (
	"bufio"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go6502/drivecore/emu/session"
)

func testROM() []byte {
	rom := make([]byte, 0x8000)
	rom[0x7ffc] = 0x00
	rom[0x7ffd] = 0x80
	rom[0x0000] = 0x4c // JMP $8000
	rom[0x0001] = 0x00
	rom[0x0002] = 0x80
	return rom
}

func dial(t *testing.T, srv *Server) (net.Conn, *bufio.Reader) {
	t.Helper()
	addr := srv.listener.Addr().String()
	conn, err := net.DialTimeout("tcp", addr, time.Second)
	require.NoError(t, err)
	return conn, bufio.NewReader(conn)
}

func sendLine(t *testing.T, conn net.Conn, reader *bufio.Reader, line string) string {
	t.Helper()
	_, err := fmt.Fprintln(conn, line)
	require.NoError(t, err)
	reply, err := reader.ReadString('\n')
	require.NoError(t, err)
	return reply[:len(reply)-1]
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	sess, err := session.NewSession(testROM(), session.Config{})
	require.NoError(t, err)
	srv, err := Listen("127.0.0.1:0", sess)
	require.NoError(t, err)
	t.Cleanup(srv.Stop)
	return srv
}

func TestStepAdvancesSessionCycles(t *testing.T) {
	srv := newTestServer(t)
	conn, reader := dial(t, srv)
	defer conn.Close()

	assert.Equal(t, "OK", sendLine(t, conn, reader, "STEP 50"))
	reply := sendLine(t, conn, reader, "SNAPSHOT")
	assert.Contains(t, reply, "cycle=50")
}

func TestSetAndGetLineRoundTrips(t *testing.T) {
	srv := newTestServer(t)
	conn, reader := dial(t, srv)
	defer conn.Close()

	assert.Equal(t, "OK", sendLine(t, conn, reader, "SETLINE ATN 1"))
	assert.Equal(t, "OK", sendLine(t, conn, reader, "STEP"))
	assert.Equal(t, "1", sendLine(t, conn, reader, "GETLINE ATN"))
}

func TestUnknownLineIsRejected(t *testing.T) {
	srv := newTestServer(t)
	conn, reader := dial(t, srv)
	defer conn.Close()

	reply := sendLine(t, conn, reader, "GETLINE BOGUS")
	assert.Contains(t, reply, "ERR")
}

func TestResetCommandDrivesIECResetLine(t *testing.T) {
	srv := newTestServer(t)
	conn, reader := dial(t, srv)
	defer conn.Close()

	assert.Equal(t, "OK", sendLine(t, conn, reader, "RESET 1"))
	assert.Equal(t, "OK", sendLine(t, conn, reader, "RESET 0"))
}

func TestQuitClosesTheConnection(t *testing.T) {
	srv := newTestServer(t)
	conn, reader := dial(t, srv)
	defer conn.Close()

	assert.Equal(t, "BYE", sendLine(t, conn, reader, "QUIT"))
}

func TestTwoConnectionsShareOneSession(t *testing.T) {
	srv := newTestServer(t)
	connA, readerA := dial(t, srv)
	defer connA.Close()
	connB, readerB := dial(t, srv)
	defer connB.Close()

	sendLine(t, connA, readerA, "STEP 10")
	reply := sendLine(t, connB, readerB, "SNAPSHOT")
	assert.Contains(t, reply, "cycle=10")
}
