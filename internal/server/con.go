//go:generate mockery --name=ConnectionStore --output=./mocks
package server

import (
	"sync"
	"time"

	"pongadmin/internal/parser"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-set/v2"
)

const WRITE_TIMEOUT = 5 * time.Second

// ConnectionStore keeps the live websocket connections of every browser session.
type ConnectionStore interface {
	AddConnection(sessionId string, conn *websocket.Conn)
	RemoveConnection(sessionId string, conn *websocket.Conn)
	Broadcast(sessionId string, event parser.ReloadEvent) int
	CloseSession(sessionId string)
}

type InMemoryConnectionStore struct {
	mut   sync.Mutex
	conns map[string]*set.Set[*liveConn]
	index map[*websocket.Conn]*liveConn
}

// liveConn serialises writes to one connection.
type liveConn struct {
	mut  sync.Mutex
	conn *websocket.Conn
}

func NewConnectionStore() *InMemoryConnectionStore {
	return &InMemoryConnectionStore{
		conns: make(map[string]*set.Set[*liveConn]),
		index: make(map[*websocket.Conn]*liveConn),
	}
}

func (c *InMemoryConnectionStore) AddConnection(sessionId string, wssConn *websocket.Conn) {
	c.mut.Lock()
	defer c.mut.Unlock()
	conns, exists := c.conns[sessionId]
	if !exists {
		conns = set.New[*liveConn](1)
		c.conns[sessionId] = conns
	}
	live := &liveConn{conn: wssConn}
	c.index[wssConn] = live
	conns.Insert(live)
}

func (c *InMemoryConnectionStore) RemoveConnection(sessionId string, wssConn *websocket.Conn) {
	c.mut.Lock()
	defer c.mut.Unlock()
	c.removeLocked(sessionId, wssConn)
}

func (c *InMemoryConnectionStore) removeLocked(sessionId string, wssConn *websocket.Conn) {
	live, exists := c.index[wssConn]
	if !exists {
		return
	}
	delete(c.index, wssConn)
	conns, exists := c.conns[sessionId]
	if !exists {
		return
	}
	conns.Remove(live)
	if conns.Empty() {
		delete(c.conns, sessionId)
	}
}

// Broadcast sends event to every connection of the session and returns how
// many received it. Connections that fail the write are dropped.
func (c *InMemoryConnectionStore) Broadcast(sessionId string, event parser.ReloadEvent) int {
	c.mut.Lock()
	conns, exists := c.conns[sessionId]
	if !exists {
		c.mut.Unlock()
		return 0
	}
	targets := conns.Slice()
	c.mut.Unlock()

	delivered := 0
	for _, live := range targets {
		live.mut.Lock()
		live.conn.SetWriteDeadline(time.Now().Add(WRITE_TIMEOUT))
		err := live.conn.WriteJSON(event)
		live.mut.Unlock()
		if err != nil {
			c.RemoveConnection(sessionId, live.conn)
			live.conn.Close()
			continue
		}
		delivered++
	}
	return delivered
}

// CloseSession closes and forgets every connection of the session.
func (c *InMemoryConnectionStore) CloseSession(sessionId string) {
	c.mut.Lock()
	conns, exists := c.conns[sessionId]
	if !exists {
		c.mut.Unlock()
		return
	}
	targets := conns.Slice()
	for _, live := range targets {
		delete(c.index, live.conn)
	}
	delete(c.conns, sessionId)
	c.mut.Unlock()

	for _, live := range targets {
		live.mut.Lock()
		live.conn.Close()
		live.mut.Unlock()
	}
}

// Len returns the number of live connections of the session.
func (c *InMemoryConnectionStore) Len(sessionId string) int {
	c.mut.Lock()
	defer c.mut.Unlock()
	conns, exists := c.conns[sessionId]
	if !exists {
		return 0
	}
	return conns.Size()
}
