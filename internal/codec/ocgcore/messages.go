package ocgcore

// Core message types understood by the encoder.
const (
	MsgHint        uint8 = 2
	MsgWaiting     uint8 = 3
	MsgWin         uint8 = 5
	MsgUpdateData  uint8 = 6
	MsgUpdateCard  uint8 = 7
	MsgShuffleDeck uint8 = 32
	MsgShuffleHand uint8 = 33
	MsgNewTurn     uint8 = 40
	MsgNewPhase    uint8 = 41
	MsgMove        uint8 = 50
	MsgDraw        uint8 = 90
	MsgDamage      uint8 = 91
	MsgRecover     uint8 = 92
	MsgLPUpdate    uint8 = 93
	MsgPayLPCost   uint8 = 100
	MsgMatchKill   uint8 = 170
)

// Query field flags, as written by the core.
const (
	queryCode        uint32 = 0x1
	queryPosition    uint32 = 0x2
	queryAlias       uint32 = 0x4
	queryType        uint32 = 0x8
	queryLevel       uint32 = 0x10
	queryRank        uint32 = 0x20
	queryAttribute   uint32 = 0x40
	queryRace        uint32 = 0x80
	queryAttack      uint32 = 0x100
	queryDefense     uint32 = 0x200
	queryBaseAttack  uint32 = 0x400
	queryBaseDefense uint32 = 0x800
	queryEquipCard   uint32 = 0x4000
	queryTargetCard  uint32 = 0x8000
	queryCounters    uint32 = 0x20000
	queryOwner       uint32 = 0x40000
	queryStatus      uint32 = 0x80000
	queryIsPublic    uint32 = 0x100000
	queryLScale      uint32 = 0x200000
	queryRScale      uint32 = 0x400000
	queryLink        uint32 = 0x800000
	queryIsHidden    uint32 = 0x1000000
	queryCover       uint32 = 0x2000000
	queryEnd         uint32 = 0x80000000
)
