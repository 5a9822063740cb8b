package diagram

// ActorKind selects the actor glyph: plain box, collection, queue,
// database cylinder, or a stick-figure "actor-man".
type ActorKind string

const (
	ActorDefault    ActorKind = ""
	ActorCollection ActorKind = "collections"
	ActorQueue      ActorKind = "queue"
	ActorDatabase   ActorKind = "database"
	ActorMan        ActorKind = "actor"
)

// Actor is one lifeline column.
type Actor struct {
	ID    string
	Label string
	Kind  ActorKind
}

// ArrowKind is a message arrow's line/head style.
type ArrowKind string

const (
	ArrowSolid        ArrowKind = "solid"
	ArrowSolidCross   ArrowKind = "solid_cross"
	ArrowSolidOpen    ArrowKind = "solid_open"
	ArrowDotted       ArrowKind = "dotted"
	ArrowDottedCross  ArrowKind = "dotted_cross"
	ArrowDottedOpen   ArrowKind = "dotted_open"
	ArrowBidirectional ArrowKind = "bidirectional"
)

// Activation marks an activation-bar start/end attached to a message.
type Activation int

const (
	ActivationNone Activation = iota
	ActivationStart
	ActivationEnd
)

// Message is one sequence-diagram arrow between two actors.
type Message struct {
	From, To   string
	Label      string
	Arrow      ArrowKind
	Activation Activation
}

// BlockKind names a sequence-diagram frame type.
type BlockKind string

const (
	BlockAlt      BlockKind = "alt"
	BlockOpt      BlockKind = "opt"
	BlockLoop     BlockKind = "loop"
	BlockPar      BlockKind = "par"
	BlockCritical BlockKind = "critical"
	BlockBreak    BlockKind = "break"
)

// Block is a frame spanning a contiguous run of messages, with optional
// else/and/option sections (each section's label and the index of the
// first message it covers).
type Block struct {
	Kind     BlockKind
	Sections []BlockSection
}

// BlockSection is one labeled section of a Block (the "alt" branch itself,
// or an "else"/"and"/"option" continuation).
type BlockSection struct {
	Label          string
	FromMessageIdx int
}

// Note is a free-floating annotation attached to one or two actors.
type Note struct {
	Actors []string
	Text   string
}

// Entry is one item in the diagram's linear body: a message, a note, or a
// block boundary. Actor (de)activation rides on the Message's Activation
// field rather than being an entry of its own.
type Entry struct {
	Message *Message
	Note    *Note
	Block   *Block
}

// SequenceModel is the semantic model for sequenceDiagram sources.
type SequenceModel struct {
	Config Config

	Actors  []Actor
	Entries []Entry

	Title     string
	DiagramID string
}
