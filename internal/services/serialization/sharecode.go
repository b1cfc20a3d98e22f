package serialization

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/spiritwiki/loadout-api/internal/entities/game"
)

// uuidV4Pattern matches a bare version-4 UUID.
var uuidV4Pattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// EncodeLoadout renders a loadout as a URL-safe share code: sharing-flavor
// serialization, JSON, base64. Encoding failures log and return an empty
// string so callers check for a falsy code instead of handling errors.
func EncodeLoadout(loadout *game.Loadout, mySpirits map[string]*game.CollectionSpirit) string {
	data := SerializeLoadoutForSharing(loadout, mySpirits)
	if data == nil {
		return ""
	}

	raw, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to encode loadout share code", "error", err)
		return ""
	}
	return base64.URLEncoding.EncodeToString(raw)
}

// DecodeLoadout is the inverse of EncodeLoadout. Share codes built by
// older clients used the standard base64 alphabet, so both are accepted.
// Any failure logs and returns nil.
func DecodeLoadout(encoded string) *game.LoadoutData {
	if encoded == "" {
		return nil
	}

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		raw, err = base64.StdEncoding.DecodeString(encoded)
	}
	if err != nil {
		slog.Warn("failed to decode loadout share code", "error", err)
		return nil
	}

	var data game.LoadoutData
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.Warn("failed to decode loadout share code", "error", err)
		return nil
	}
	return &data
}

// IsLoadoutID reports whether an identifier names a persisted loadout, as
// opposed to a content hash. Persisted loadouts carry a known prefix or
// are bare version-4 UUIDs; content hashes are bare hex.
func IsLoadoutID(identifier string) bool {
	if strings.HasPrefix(identifier, "loadout-") || strings.HasPrefix(identifier, "battle-loadouts-") {
		return true
	}
	return uuidV4Pattern.MatchString(identifier)
}
