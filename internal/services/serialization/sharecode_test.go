package serialization_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spiritwiki/loadout-api/internal/services/serialization"
	"github.com/spiritwiki/loadout-api/internal/testutils"
)

type ShareCodeTestSuite struct {
	suite.Suite
}

func (s *ShareCodeTestSuite) TestEncodeDecodeRoundTrip() {
	loadout := testutils.SampleLoadout()
	mySpirits := testutils.SampleMySpirits()

	encoded := serialization.EncodeLoadout(loadout, mySpirits)
	s.Require().NotEmpty(encoded)

	decoded := serialization.DecodeLoadout(encoded)

	s.Require().NotNil(decoded)
	s.Equal(serialization.SerializeLoadoutForSharing(loadout, mySpirits), decoded)
}

func (s *ShareCodeTestSuite) TestEncodeNilLoadout() {
	s.Empty(serialization.EncodeLoadout(nil, nil))
}

func (s *ShareCodeTestSuite) TestDecodeRejectsGarbage() {
	s.Nil(serialization.DecodeLoadout(""))
	s.Nil(serialization.DecodeLoadout("!!!not-base64!!!"))

	// Valid base64, invalid JSON.
	garbage := base64.URLEncoding.EncodeToString([]byte("not json at all"))
	s.Nil(serialization.DecodeLoadout(garbage))
}

func (s *ShareCodeTestSuite) TestDecodeAcceptsStandardAlphabet() {
	loadout := testutils.SampleLoadout()
	data := serialization.SerializeLoadoutForSharing(loadout, testutils.SampleMySpirits())
	raw, err := json.Marshal(data)
	s.Require().NoError(err)

	decoded := serialization.DecodeLoadout(base64.StdEncoding.EncodeToString(raw))

	s.Require().NotNil(decoded)
	s.Equal(data.Name, decoded.Name)
}

func (s *ShareCodeTestSuite) TestIsLoadoutID() {
	testCases := []struct {
		name       string
		identifier string
		want       bool
	}{
		{name: "loadout prefix", identifier: "loadout-abc123", want: true},
		{name: "legacy battle prefix", identifier: "battle-loadouts-7", want: true},
		{name: "uuid v4", identifier: "9b2fa3a8-4c1d-4e9b-8f3a-2d7c1a5b9e04", want: true},
		{name: "uppercase uuid v4", identifier: "9B2FA3A8-4C1D-4E9B-8F3A-2D7C1A5B9E04", want: true},
		{name: "uuid v1 is not a loadout id", identifier: "9b2fa3a8-4c1d-1e9b-8f3a-2d7c1a5b9e04", want: false},
		{name: "content hash", identifier: "9f86d081884c7d659a2feaa0c55ad015", want: false},
		{name: "short hex", identifier: "deadbeef", want: false},
		{name: "empty", identifier: "", want: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, serialization.IsLoadoutID(tc.identifier))
		})
	}
}

func TestShareCodeSuite(t *testing.T) {
	suite.Run(t, new(ShareCodeTestSuite))
}
