package game

// EngravingPiece is a resolved engraving piece placed on the soul weapon
// grid or held in the build's inventory. Anchor coordinates are meaningful
// only for placed pieces.
type EngravingPiece struct {
	Shape          *Shape `json:"shape"`
	Rarity         string `json:"rarity"`
	Level          int32  `json:"level"`
	Rotation       int32  `json:"rotation"`
	AnchorRow      int32  `json:"anchorRow"`
	AnchorCol      int32  `json:"anchorCol"`
	InventoryIndex int32  `json:"inventoryIndex"`
}

// EngravingPieceData is the serialized form of an engraving piece. The
// shape is referenced by ID; placement and configuration are kept verbatim.
type EngravingPieceData struct {
	ShapeID        string `json:"shapeId"`
	Rarity         string `json:"rarity"`
	Level          int32  `json:"level"`
	Rotation       int32  `json:"rotation"`
	AnchorRow      int32  `json:"anchorRow"`
	AnchorCol      int32  `json:"anchorCol"`
	InventoryIndex int32  `json:"inventoryIndex"`
}

// GridCell is one cell of the resolved soul weapon grid. Only anchor cells
// carry a piece; covered and empty cells have a nil piece.
type GridCell struct {
	Active bool            `json:"active"`
	Piece  *EngravingPiece `json:"piece"`
}

// GridCellData is the serialized form of a grid cell.
type GridCellData struct {
	Active bool                `json:"active"`
	Piece  *EngravingPieceData `json:"piece"`
}

// SoulWeaponBuild is a resolved soul weapon engraving layout. The grid
// topology (dimensions, active cells) is game data and is preserved as-is.
type SoulWeaponBuild struct {
	Grid      [][]GridCell     `json:"grid"`
	Inventory []EngravingPiece `json:"inventory"`
}

// SoulWeaponBuildData is the serialized form of a soul weapon build.
type SoulWeaponBuildData struct {
	Grid      [][]GridCellData     `json:"grid"`
	Inventory []EngravingPieceData `json:"inventory"`
}
