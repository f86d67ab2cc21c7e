package players

import "sync"

type Player struct {
	ID   string
	Name string
}

// Roster tracks one room's membership. Members keep insertion order (the
// first member doubles as the host fallback) and the alive list shrinks
// monotonically once play begins: an identity that has left the alive set
// is never re-added, a returning connection gets a fresh identity.
type Roster struct {
	mu      sync.Mutex
	members []*Player
	alive   []string
	removed map[string]bool
}

func NewRoster() *Roster {
	return &Roster{removed: make(map[string]bool)}
}

// Add appends a player to the member list and, when asAlive is set, to the
// alive list. Duplicate identities and previously removed identities are
// rejected.
func (r *Roster) Add(id, name string, asAlive bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.removed[id] || r.indexOfLocked(id) >= 0 {
		return false
	}
	r.members = append(r.members, &Player{ID: id, Name: name})
	if asAlive {
		r.alive = append(r.alive, id)
	}
	return true
}

// Eliminate drops a player from the alive list only; they remain a member
// and keep receiving room events.
func (r *Roster) Eliminate(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropAliveLocked(id)
}

// Remove drops a player from both lists.
func (r *Roster) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOfLocked(id)
	if i < 0 {
		return false
	}
	r.members = append(r.members[:i], r.members[i+1:]...)
	r.dropAliveLocked(id)
	return true
}

// RemoveMember drops a player from the member list without touching the
// alive list. Used once a game is settled.
func (r *Roster) RemoveMember(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOfLocked(id)
	if i < 0 {
		return false
	}
	r.members = append(r.members[:i], r.members[i+1:]...)
	r.removed[id] = true
	return true
}

func (r *Roster) indexOfLocked(id string) int {
	for i, p := range r.members {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *Roster) dropAliveLocked(id string) bool {
	r.removed[id] = true
	for i, aid := range r.alive {
		if aid == id {
			r.alive = append(r.alive[:i], r.alive[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Roster) Contains(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indexOfLocked(id) >= 0
}

func (r *Roster) IsAlive(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, aid := range r.alive {
		if aid == id {
			return true
		}
	}
	return false
}

func (r *Roster) NameOf(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOfLocked(id); i >= 0 {
		return r.members[i].Name
	}
	return ""
}

// Names returns display names in join order.
func (r *Roster) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.members))
	for _, p := range r.members {
		names = append(names, p.Name)
	}
	return names
}

func (r *Roster) AliveIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.alive))
	copy(ids, r.alive)
	return ids
}

func (r *Roster) AliveNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.alive))
	for _, id := range r.alive {
		if i := r.indexOfLocked(id); i >= 0 {
			names = append(names, r.members[i].Name)
		}
	}
	return names
}

// OtherAliveIDs returns the alive identities excluding one player, the
// candidate set for a bomb pass.
func (r *Roster) OtherAliveIDs(exclude string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	others := make([]string, 0, len(r.alive))
	for _, id := range r.alive {
		if id != exclude {
			others = append(others, id)
		}
	}
	return others
}

func (r *Roster) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

func (r *Roster) AliveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.alive)
}

func (r *Roster) IsEmpty() bool {
	return r.Len() == 0
}

// FirstID returns the identity of the oldest remaining member, or "" for
// an empty roster. Used for host reassignment.
func (r *Roster) FirstID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.members) == 0 {
		return ""
	}
	return r.members[0].ID
}
