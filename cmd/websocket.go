package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"garageFront/internal/handlers"
	"garageFront/internal/models"
	"garageFront/internal/services"
	"garageFront/internal/timeutil"
)

/********** timings **********/
const (
	readLimit          = 1 << 20           // 1 MB
	readDeadline       = 120 * time.Second // read deadline, extended by pongs
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second // time allowed for the first {garageId} frame
	statusInterval     = time.Minute      // open/closed recheck period
)

/*****************************/

type unreg struct {
	subscriberID int
	conn         *websocket.Conn
}

// Client is a connected subscriber. Hours are captured once at hello so the
// status ticker never calls upstream.
type Client struct {
	ID       int
	GarageID int
	Hours    []models.OperatingHour
	Socket   *websocket.Conn
	lastOpen bool
}

// garageStatus is pushed when the watched garage flips open/closed.
type garageStatus struct {
	Type     string `json:"type"`
	GarageID int    `json:"garage_id"`
	IsOpen   bool   `json:"is_open"`
}

type WebSocketManager struct {
	clients    map[int]*Client
	bookings   chan handlers.BookingEvent
	register   chan *Client
	unregister chan unreg

	garages  *services.GarageService
	metrics  *Metrics
	errorLog *log.Logger
}

func NewWebSocketManager(garages *services.GarageService, metrics *Metrics, errorLog *log.Logger) *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[int]*Client),
		bookings:   make(chan handlers.BookingEvent),
		register:   make(chan *Client),
		unregister: make(chan unreg),
		garages:    garages,
		metrics:    metrics,
		errorLog:   errorLog,
	}
}

// Bookings is where the booking handler drops confirmed-booking events.
func (ws *WebSocketManager) Bookings() chan<- handlers.BookingEvent {
	return ws.bookings
}

// All operations on clients happen only here.
func (ws *WebSocketManager) Run() {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case client := <-ws.register:
			// a subscriber gets one socket; close any stale one
			if old, ok := ws.clients[client.ID]; ok && old.Socket != client.Socket {
				_ = old.Socket.Close()
			} else if !ok {
				ws.metrics.WebsocketsTotal.Inc()
			}
			ws.clients[client.ID] = client
			ws.errorLog.Printf("WS register subscriber=%d garage=%d", client.ID, client.GarageID)

		case u := <-ws.unregister:
			// drop only if the current socket matches
			if cur, ok := ws.clients[u.subscriberID]; ok && cur.Socket == u.conn {
				_ = cur.Socket.Close()
				delete(ws.clients, u.subscriberID)
				ws.metrics.WebsocketsTotal.Dec()
				ws.errorLog.Printf("WS unregister subscriber=%d", u.subscriberID)
			}

		case ev := <-ws.bookings:
			ws.metrics.BookingsTotal.Inc()
			if client, ok := ws.clients[ev.SubscriberID]; ok {
				_ = client.Socket.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := client.Socket.WriteJSON(ev); err != nil {
					ws.errorLog.Printf("booking push error to=%d: %v", ev.SubscriberID, err)
					_ = client.Socket.Close()
					delete(ws.clients, ev.SubscriberID)
					ws.metrics.WebsocketsTotal.Dec()
				}
			}

		case <-ticker.C:
			now := timeutil.Now()
			for id, client := range ws.clients {
				if client.GarageID == 0 || len(client.Hours) == 0 {
					continue
				}
				open := services.GarageIsOpen(client.Hours, now)
				if open == client.lastOpen {
					continue
				}
				client.lastOpen = open
				_ = client.Socket.SetWriteDeadline(time.Now().Add(writeDeadline))
				msg := garageStatus{Type: "garage_status", GarageID: client.GarageID, IsOpen: open}
				if err := client.Socket.WriteJSON(msg); err != nil {
					ws.errorLog.Printf("status push error to=%d: %v", id, err)
					_ = client.Socket.Close()
					delete(ws.clients, id)
					ws.metrics.WebsocketsTotal.Dec()
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// The first frame from the client must be { "garageId": <int> }; zero means
// the subscriber only wants booking events, no garage status.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	subscriberID, ok := r.Context().Value("subscriber_id").(int)
	if !ok || subscriberID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		GarageID int `json:"garageId"`
	}
	if err := conn.ReadJSON(&hello); err != nil {
		app.errorLog.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	client := &Client{ID: subscriberID, GarageID: hello.GarageID, Socket: conn}
	if hello.GarageID > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		detail, err := app.garageService.GetGarageDetail(ctx, hello.GarageID, "")
		cancel()
		if err != nil {
			app.errorLog.Printf("hello garage lookup failed id=%d: %v", hello.GarageID, err)
		} else {
			client.Hours = detail.OperatingHours
			client.lastOpen = detail.IsOpen
		}
	}
	app.wsManager.register <- client

	go pingLoop(app.wsManager, conn, subscriberID)
	go readLoop(app.wsManager, conn, subscriberID)
}

func pingLoop(ws *WebSocketManager, conn *websocket.Conn, subscriberID int) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- unreg{subscriberID: subscriberID, conn: conn}
			return
		}
	}
}

// readLoop drains the socket so pongs and close frames are processed. The
// channel is push-only; any data frame from the client is discarded.
func readLoop(ws *WebSocketManager, conn *websocket.Conn, subscriberID int) {
	defer func() {
		ws.unregister <- unreg{subscriberID: subscriberID, conn: conn}
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(readDeadline))
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
