// Package state holds the streamtabs view engine shared by ingestion and the UI.
//
// # Overview
//
// A Store owns one bounded buffer per tab, the global sequence counter, the
// per-tab unread marks, the Live/Paused mode, the focused tab and the single
// selected line. Ingestion writes through Ingest; the UI reads copies through
// Frame and changes state with Apply.
//
// # Architecture
//
//	Producer (ingestion):          Consumer (UI):
//	┌──────────────────┐          ┌───────────────────┐
//	│ source.Next()    │          │ tick              │
//	│      ↓           │          │      ↓            │
//	│ store.Ingest()   │─────────→│ store.Frame()     │
//	│      ↓           │ (mutex)  │      ↓            │
//	│  repeat...       │          │ render            │
//	└──────────────────┘          │ store.Apply(...)  │
//	                              └───────────────────┘
//
// Every method takes the store's RWMutex for its whole duration, so a frame
// never sees a buffer mid-eviction, an unread counter mid-increment or a pause
// that has snapshotted only some tabs.
//
// # Routing
//
// Ingest assigns the next sequence number (starting at 0) and appends the line
// to tab 0 and to every filter tab whose pattern is a case-sensitive substring
// of the text. Each tab stores its own copy; eviction in one tab never affects
// another.
//
// # Live and Paused
//
// Pause records buffer.Total for every tab as its cutoff. While paused, a tab
// shows only lines appended before its cutoff. Because rings evict from the
// front, the visible count is cutoff minus evicted lines, so a snapshot shrinks
// when later appends push pre-pause lines out. Unpause forgets the cutoffs.
//
// # Unread Accounting
//
//	unread = buffer.Total - seen
//
// seen only moves forward, at these events:
//
//   - Focus while live: seen = Total
//   - Focus while paused: seen = cutoff
//   - Pause: the focused tab is marked up to its cutoff
//   - Unpause: the focused tab is marked up to Total
//   - Ingest while live: the focused tab stays read, since it is on screen
//
// # Selection Injection
//
// The selection is one (sequence, text) pair. Frame binary-searches the
// focused tab for the selected sequence. If the tab holds the line it is
// flagged; otherwise the selection is merged in at the slot its sequence
// number would occupy. Nothing is ever written into a buffer for this.
//
// A selection whose line has been evicted from every tab stays recorded but
// is not rendered. Sequence numbers are never reused, so it will not return;
// the user clears it with the clear-selection key or by selecting another line.
//
// # Testing Considerations
//
// Stores are independent values; tests build as many as they need with New.
package state
