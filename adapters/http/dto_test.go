package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhattranq/profilehub/internal/domain/profile"
)

func TestDecodeSectionBodyEnvelopes(t *testing.T) {
	// Skills arrive wrapped and come out as the bare list.
	v, err := decodeSectionBody(profile.SectionSkills, strings.NewReader(`{"skills":["Litigation"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Litigation"}, v)

	// Social links arrive wrapped too.
	v, err = decodeSectionBody(profile.SectionSocialLinks, strings.NewReader(`{"links":{"github":"https://github.com/jane"}}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"github": "https://github.com/jane"}, v)

	// List sections arrive bare.
	v, err = decodeSectionBody(profile.SectionEducation, strings.NewReader(`[{"degree":"JD"}]`))
	require.NoError(t, err)
	require.IsType(t, []profile.Education{}, v)
	assert.Equal(t, "JD", v.([]profile.Education)[0].Degree)
}

func TestDecodeSectionBodyDefaultsNilContainers(t *testing.T) {
	v, err := decodeSectionBody(profile.SectionSkills, strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Equal(t, []string{}, v)

	v, err = decodeSectionBody(profile.SectionSocialLinks, strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{}, v)
}

func TestDecodeSectionBodyRejectsMalformedJSON(t *testing.T) {
	_, err := decodeSectionBody(profile.SectionAbout, strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestSectionResponseBodyFieldNames(t *testing.T) {
	cases := map[profile.SectionKey]string{
		profile.SectionProfile:       "profile",
		profile.SectionAbout:         "about",
		profile.SectionEducation:     "updatedEducation",
		profile.SectionExperience:    "updatedExperience",
		profile.SectionAchievements:  "updatedCertifications",
		profile.SectionContributions: "updatedContributions",
	}
	for key, field := range cases {
		body := sectionResponseBody(key, nil)
		assert.Contains(t, body, field, "section %s", key)
	}

	body := sectionResponseBody(profile.SectionSkills, []string{"Litigation"})
	require.Contains(t, body, "skillRecord")
	assert.Equal(t, skillsEnvelope{Skills: []string{"Litigation"}}, body["skillRecord"])

	body = sectionResponseBody(profile.SectionSocialLinks, map[string]string{"github": "x"})
	require.Contains(t, body, "socialLinkRecord")
	assert.Equal(t, socialLinksEnvelope{Links: map[string]string{"github": "x"}}, body["socialLinkRecord"])
}
