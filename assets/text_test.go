package assets

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psymaze/internal/entity"
	"psymaze/internal/system"
)

func TestLoadEmbeddedTables(t *testing.T) {
	txt, err := Load()
	require.NoError(t, err)
	assert.Len(t, txt.Quotes, 15)
	assert.Len(t, txt.Exercises, 8)

	d := txt.ArchetypeDialogue()
	require.Len(t, d, 3)
	assert.Equal(t, "Mentor: Even small steps count. Keep going.", d[entity.Mentor].Line(entity.Neutral))
	assert.Equal(t, "Shadow: Silence is loud, isn't it?", d[entity.Shadow].Neutral)
	assert.Contains(t, d[entity.Sage].Sad, "Pain is a teacher")
}

func TestEveryOutcomeHasText(t *testing.T) {
	txt, err := Load()
	require.NoError(t, err)
	for o := system.OutcomeTrapFailed; o <= system.OutcomeSteady; o++ {
		ot := txt.Outcome(o)
		assert.NotEmpty(t, ot.Message, o.String())
		assert.NotEmpty(t, ot.Lesson, o.String())
	}
	assert.Equal(t, OutcomeText{}, txt.Outcome(system.OutcomeNone))
}

func TestEveryHintHasText(t *testing.T) {
	txt, err := Load()
	require.NoError(t, err)
	for _, h := range []system.Hint{system.HintWandering, system.HintSurvivor, system.HintSeeker} {
		assert.NotEmpty(t, txt.Hint(h), h.String())
	}
}

func TestLessonsAndMessages(t *testing.T) {
	txt, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, txt.Lessons.NPCMeeting)
	assert.Equal(t, "[End-of-session reflection] ", txt.Lessons.EndReflectionPrefix)
	assert.NotEmpty(t, txt.Messages.Morph)
	assert.NotEmpty(t, txt.Messages.JournalEmpty)
}

func TestRandomSupportCoversBothKinds(t *testing.T) {
	txt, err := Load()
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(5))
	kinds := map[SupportKind]int{}
	for i := 0; i < 200; i++ {
		s := txt.RandomSupport(rng)
		kinds[s.Kind]++
		if s.Kind == SupportQuote {
			assert.Contains(t, txt.Quotes, s.Text)
			assert.Equal(t, "Philosophical Quote", s.Title())
		} else {
			assert.Contains(t, txt.Exercises, s.Text)
			assert.Equal(t, "Philosophical Exercise", s.Title())
		}
	}
	assert.Positive(t, kinds[SupportQuote])
	assert.Positive(t, kinds[SupportExercise])
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := parse([]byte("quotes: []\n"))
	assert.Error(t, err)
	_, err = parse([]byte("quotes: [\n"))
	assert.Error(t, err)
}
