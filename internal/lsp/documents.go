package lsp

import "sync"

// document is the server-side copy of an open palette file.
type document struct {
	content string
	version int32
}

// DocumentStore holds open document contents keyed by URI. Versions come
// from the client and increase with every change; a stale Put is ignored.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]document)}
}

// Put stores content for a URI. Content older than what the store
// already holds (by version) is dropped.
func (s *DocumentStore) Put(uri, content string, version int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.docs[uri]; ok && version < cur.version {
		return
	}
	s.docs[uri] = document{content: content, version: version}
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc.content, ok
}
