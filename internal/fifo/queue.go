package fifo

// queueNode is a node in a doubly-linked insertion queue.
// The node stores a key for O(1) deletion from the parent map.
type queueNode[K comparable] struct {
	key  K
	prev *queueNode[K]
	next *queueNode[K]
}

// queue orders keys by insertion time.
// The head is the newest key, the tail is the oldest.
// Not safe for concurrent use; Cache holds the lock.
type queue[K comparable] struct {
	head *queueNode[K]
	tail *queueNode[K]
	len  int
}

func (q *queue[K]) Len() int {
	return q.len
}

// PushFront records a newly inserted key and returns its node.
func (q *queue[K]) PushFront(key K) *queueNode[K] {
	node := &queueNode[K]{key: key}
	if q.head == nil {
		q.head = node
		q.tail = node
	} else {
		node.next = q.head
		q.head.prev = node
		q.head = node
	}
	q.len++
	return node
}

// Remove unlinks a node from the queue.
func (q *queue[K]) Remove(node *queueNode[K]) {
	if node == nil {
		return
	}
	q.unlink(node)
}

// RemoveOldest removes and returns the oldest-inserted key.
// Returns zero value and false if the queue is empty.
func (q *queue[K]) RemoveOldest() (K, bool) {
	if q.tail == nil {
		var zero K
		return zero, false
	}
	node := q.tail
	q.unlink(node)
	return node.key, true
}

// Oldest returns the oldest-inserted key without removing it.
func (q *queue[K]) Oldest() (K, bool) {
	if q.tail == nil {
		var zero K
		return zero, false
	}
	return q.tail.key, true
}

// Keys returns keys from oldest to newest.
func (q *queue[K]) Keys() []K {
	keys := make([]K, 0, q.len)
	for n := q.tail; n != nil; n = n.prev {
		keys = append(keys, n.key)
	}
	return keys
}

func (q *queue[K]) Clear() {
	q.head = nil
	q.tail = nil
	q.len = 0
}

func (q *queue[K]) unlink(node *queueNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		q.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		q.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	q.len--
}
