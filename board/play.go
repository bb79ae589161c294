package board

// IsLegal reports whether player may play at v right now. It performs no
// mutation and allocates nothing, so callers (in particular the playout
// policy) can call it once per candidate vertex without heap traffic.
func (b *Board) IsLegal(player Player, v Vertex) bool {
	reason := b.checkLegal(player, v)
	return reason.Ok()
}

// PlayLegal checks legality and, if legal, plays the move. It is
// equivalent to is_legal followed by play in spec 4.3: the check and the
// play each scan v's neighbors.
func (b *Board) PlayLegal(player Player, v Vertex) IllegalReason {
	reason := b.checkLegal(player, v)
	if !reason.Ok() {
		return reason
	}
	b.Play(player, v)
	return Legal
}

// checkLegal is the read-only legality predicate described in spec 4.3:
// occupied/off-board/ko/wrong-turn rejections, then (for a real vertex)
// either "this move captures something" (always legal, modulo ko/super-ko,
// since a capturing move can never be suicide) or an O(distinct
// same-color neighbor chains) computation of the resulting liberty count.
func (b *Board) checkLegal(player Player, v Vertex) IllegalReason {
	if b.cfg.EnforceTurnOrder && player != b.toMove {
		return WrongTurn
	}
	if v == Pass {
		return Legal
	}
	if v < 0 || int(v) >= len(b.color) {
		return IllegalOffBoard
	}
	if b.color[v] == OffBoard {
		return IllegalOffBoard
	}
	if b.color[v] != Empty {
		return Occupied
	}
	if v == b.koVertex {
		return Ko
	}

	friendly := player.Color()
	enemy := player.Opponent().Color()

	neighbors := b.Neighbors(v)
	emptyCount := int32(0)
	friendlyEdges := int32(0)
	captures := false
	var sameRoots [4]Vertex
	sameRootCount := 0

	for _, n := range neighbors {
		switch b.color[n] {
		case Empty:
			emptyCount++
		case enemy:
			// Captured iff every liberty edge of the chain names v.
			root := b.chains.find(n)
			libs, vv := int64(b.chains.libs[root]), int64(v)
			if b.chains.libSum[root] == libs*vv && b.chains.libSumSq[root] == libs*vv*vv {
				captures = true
			}
		case friendly:
			friendlyEdges++
			root := b.chains.find(n)
			seen := false
			for i := 0; i < sameRootCount; i++ {
				if sameRoots[i] == root {
					seen = true
					break
				}
			}
			if !seen {
				sameRoots[sameRootCount] = root
				sameRootCount++
			}
		}
	}

	if !captures {
		// Every friendly neighbor edge is one liberty term (naming v) that
		// the merged chain loses.
		resultLibs := emptyCount - friendlyEdges
		for i := 0; i < sameRootCount; i++ {
			resultLibs += b.chains.libs[sameRoots[i]]
		}
		if resultLibs <= 0 {
			return Suicide
		}
	}

	if b.superKoEnabled() {
		resultHash := b.hashAfter(player, v, neighbors, enemy)
		if b.historyContains(resultHash) {
			return Ko
		}
	}

	return Legal
}

// hashAfter computes the hash that would result from playing at v,
// without mutating the board. It is only ever called from checkLegal, so
// the extra neighbor scan it does to find captured chains is bounded by
// the same small set of neighbors checkLegal already looked at.
func (b *Board) hashAfter(player Player, v Vertex, neighbors [4]Vertex, enemy Color) uint64 {
	h := b.hsh ^ b.zob.Key(int(v), colorIndex(player.Color()))
	var seenRoots [4]Vertex
	seenCount := 0
	for _, n := range neighbors {
		if b.color[n] != enemy {
			continue
		}
		root := b.chains.find(n)
		libs, vv := int64(b.chains.libs[root]), int64(v)
		if b.chains.libSum[root] != libs*vv || b.chains.libSumSq[root] != libs*vv*vv {
			continue // v is not this chain's only liberty
		}
		already := false
		for i := 0; i < seenCount; i++ {
			if seenRoots[i] == root {
				already = true
			}
		}
		if already {
			continue
		}
		seenRoots[seenCount] = root
		seenCount++
		h ^= b.hashOfChain(root, enemy)
	}
	return h
}

func (b *Board) hashOfChain(root Vertex, color Color) uint64 {
	h := uint64(0)
	idx := colorIndex(color)
	v := root
	for {
		h ^= b.zob.Key(int(v), idx)
		v = b.chains.ring[v]
		if v == root {
			break
		}
	}
	return h
}

func colorIndex(c Color) int {
	if c == White {
		return 1
	}
	return 0
}

// Play executes a move unconditionally. Behavior is undefined if the
// move is not legal for player right now (spec 4.3): callers that have
// not just checked legality must use PlayLegal.
func (b *Board) Play(player Player, v Vertex) {
	if v == Pass {
		b.playPass()
		return
	}

	friendly := player.Color()
	enemy := player.Opponent().Color()
	neighbors := b.Neighbors(v)

	emptyCount := int32(0)
	var libSum, libSumSq int64
	var aLiberty Vertex = NoKo
	for _, n := range neighbors {
		if b.color[n] == Empty {
			emptyCount++
			libSum += int64(n)
			libSumSq += int64(n) * int64(n)
			aLiberty = n
		}
	}

	b.color[v] = friendly
	b.hsh ^= b.zob.Key(int(v), colorIndex(friendly))
	b.chains.newSingleton(v, emptyCount, libSum, libSumSq, aLiberty)

	var touchedEnemyRoots [4]Vertex
	touchedCount := 0

	for _, n := range neighbors {
		c := b.color[n]
		if c != friendly && c != enemy {
			continue // Empty or OffBoard: not affected by this placement
		}
		root := b.chains.find(n)
		b.chains.removeLiberty(root, v)

		if c == enemy {
			already := false
			for i := 0; i < touchedCount; i++ {
				if touchedEnemyRoots[i] == root {
					already = true
				}
			}
			if !already {
				touchedEnemyRoots[touchedCount] = root
				touchedCount++
			}
			continue
		}

		// Same color: merge n's chain into v's, if not already merged
		// (two neighbors of v can belong to the same existing chain).
		if b.chains.find(v) != root {
			b.chains.union(v, n)
		}
	}

	captured := 0
	var singleCapture Vertex = NoKo
	for i := 0; i < touchedCount; i++ {
		root := touchedEnemyRoots[i]
		if b.chains.libs[root] == 0 {
			n := b.captureChain(root, enemy)
			captured += n
			if n == 1 {
				singleCapture = root // root IS the captured vertex for a lone stone
			}
		}
	}

	b.MovesPlayed++
	b.Captures += int64(captured)

	placedRoot := b.chains.find(v)
	if captured == 1 && b.chains.size[placedRoot] == 1 && b.chains.inAtari(placedRoot) {
		b.koVertex = singleCapture
	} else {
		b.koVertex = NoKo
	}

	b.toMove = player.Opponent()
	b.lastMove = v
	b.consecutivePasses = 0
	b.recordHistory()
}

func (b *Board) playPass() {
	b.consecutivePasses++
	b.koVertex = NoKo
	b.toMove = b.toMove.Opponent()
	b.lastMove = Pass
	b.MovesPlayed++
	b.recordHistory()
}

// captureChain removes every stone in the chain rooted at root (known to
// have zero liberties) and refunds liberties to surviving neighboring
// chains. Returns the number of stones removed.
func (b *Board) captureChain(root Vertex, color Color) int {
	// Pass 1: empty every stone in the chain and unwind its hash
	// contribution. Stop once we've walked the whole ring.
	idx := colorIndex(color)
	count := 0
	v := root
	for {
		b.color[v] = Empty
		b.hsh ^= b.zob.Key(int(v), idx)
		count++
		next := b.chains.ring[v]
		v = next
		if v == root {
			break
		}
	}

	// Pass 2: every now-empty stone refunds a liberty to whichever
	// occupied neighbors survive (any neighbor that belonged to the
	// captured chain itself is already Empty by now and skipped).
	v = root
	for i := 0; i < count; i++ {
		for _, n := range b.Neighbors(v) {
			nc := b.color[n]
			if nc != Black && nc != White {
				continue
			}
			nroot := b.chains.find(n)
			b.chains.addLiberty(nroot, v)
		}
		v = b.chains.ring[v]
	}
	return count
}

// AtariVertex returns the sole liberty of the chain rooted at root, and
// true, if that chain is in atari. Cheap in the common case (the cached
// "any liberty" vertex is usually still valid); falls back to an
// O(chain size) ring walk only when it isn't, per spec section 9.
func (b *Board) AtariVertex(root Vertex) (Vertex, bool) {
	if !b.chains.inAtari(root) {
		return NoKo, false
	}
	if cached := b.chains.any[root]; cached != NoKo && b.color[cached] == Empty {
		return cached, true
	}
	v := root
	for {
		for _, n := range b.Neighbors(v) {
			if b.color[n] == Empty {
				b.chains.any[root] = n
				return n, true
			}
		}
		v = b.chains.ring[v]
		if v == root {
			break
		}
	}
	panic("board: chain reported in atari but has no liberty")
}

// ChainAt returns the representative vertex of v's chain, and whether v
// is occupied at all.
func (b *Board) ChainAt(v Vertex) (root Vertex, ok bool) {
	c := b.ColorAt(v)
	if c != Black && c != White {
		return NoKo, false
	}
	return b.chains.find(v), true
}

// ChainSize returns the number of stones in the chain rooted at root.
func (b *Board) ChainSize(root Vertex) int { return int(b.chains.size[root]) }

func (b *Board) superKoEnabled() bool { return b.cfg.SuperKoWindow >= 0 }

func (b *Board) recordHistory() {
	if !b.superKoEnabled() {
		return
	}
	b.history = append(b.history, b.hsh)
	if b.cfg.SuperKoWindow > 0 && len(b.history) > b.cfg.SuperKoWindow {
		b.history = b.history[len(b.history)-b.cfg.SuperKoWindow:]
	}
}

func (b *Board) historyContains(h uint64) bool {
	for _, past := range b.history {
		if past == h {
			return true
		}
	}
	return false
}
