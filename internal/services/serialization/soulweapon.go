package serialization

import (
	"log/slog"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
)

// SerializeSoulWeaponBuild strips every placed and inventoried engraving
// piece down to its shape ID. Cell activity is preserved verbatim: the grid
// topology is game data, not derived from the pieces.
func SerializeSoulWeaponBuild(build *game.SoulWeaponBuild) *game.SoulWeaponBuildData {
	if build == nil {
		return nil
	}

	data := &game.SoulWeaponBuildData{
		Grid:      make([][]game.GridCellData, len(build.Grid)),
		Inventory: make([]game.EngravingPieceData, 0, len(build.Inventory)),
	}
	for i, row := range build.Grid {
		cells := make([]game.GridCellData, len(row))
		for j, cell := range row {
			cells[j] = game.GridCellData{
				Active: cell.Active,
				Piece:  serializePiece(cell.Piece),
			}
		}
		data.Grid[i] = cells
	}
	for i := range build.Inventory {
		data.Inventory = append(data.Inventory, *serializePiece(&build.Inventory[i]))
	}
	return data
}

// DeserializeSoulWeaponBuild resolves shape references against the shape
// catalog. A placed piece with an unknown shape degrades its cell to
// inactive and piece-less; an inventory piece with an unknown shape is
// dropped. Both cases recover silently so a stale build still renders.
func DeserializeSoulWeaponBuild(data *game.SoulWeaponBuildData, shapes map[string]*game.Shape) *game.SoulWeaponBuild {
	if data == nil {
		return nil
	}

	build := &game.SoulWeaponBuild{
		Grid:      make([][]game.GridCell, len(data.Grid)),
		Inventory: make([]game.EngravingPiece, 0, len(data.Inventory)),
	}
	for i, row := range data.Grid {
		cells := make([]game.GridCell, len(row))
		for j, cellData := range row {
			cell := game.GridCell{Active: cellData.Active}
			if cellData.Piece != nil {
				if piece := deserializePiece(*cellData.Piece, shapes); piece != nil {
					cell.Piece = piece
				} else {
					cell.Active = false
				}
			}
			cells[j] = cell
		}
		build.Grid[i] = cells
	}
	for _, pieceData := range data.Inventory {
		if piece := deserializePiece(pieceData, shapes); piece != nil {
			build.Inventory = append(build.Inventory, *piece)
		}
	}
	return build
}

func serializePiece(piece *game.EngravingPiece) *game.EngravingPieceData {
	if piece == nil {
		return nil
	}

	data := &game.EngravingPieceData{
		Rarity:         piece.Rarity,
		Level:          piece.Level,
		Rotation:       piece.Rotation,
		AnchorRow:      piece.AnchorRow,
		AnchorCol:      piece.AnchorCol,
		InventoryIndex: piece.InventoryIndex,
	}
	if piece.Shape != nil {
		data.ShapeID = piece.Shape.ID
	}
	return data
}

func deserializePiece(data game.EngravingPieceData, shapes map[string]*game.Shape) *game.EngravingPiece {
	shape, ok := shapes[data.ShapeID]
	if !ok {
		slog.Warn("engraving shape not found in catalog", "shapeId", data.ShapeID)
		return nil
	}

	return &game.EngravingPiece{
		Shape:          shape,
		Rarity:         data.Rarity,
		Level:          data.Level,
		Rotation:       data.Rotation,
		AnchorRow:      data.AnchorRow,
		AnchorCol:      data.AnchorCol,
		InventoryIndex: data.InventoryIndex,
	}
}
