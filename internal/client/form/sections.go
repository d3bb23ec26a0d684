package form

import "github.com/nhattranq/profilehub/internal/domain/profile"

// Constructors for the four repeated sections. Each is a ListForm over its
// entry type with the shared validation rules attached.

func NewEducationForm(items []profile.Education) *ListForm[profile.Education] {
	return NewListForm(items, profile.Education.Validate)
}

func NewExperienceForm(items []profile.Experience) *ListForm[profile.Experience] {
	return NewListForm(items, profile.Experience.Validate).WithClean(profile.Experience.Clean)
}

func NewAchievementForm(items []profile.Achievement) *ListForm[profile.Achievement] {
	return NewListForm(items, profile.Achievement.Validate)
}

func NewContributionForm(items []profile.Contribution) *ListForm[profile.Contribution] {
	return NewListForm(items, profile.Contribution.Validate)
}

// NewSkillsForm edits the skills section, which is a plain tag list.
func NewSkillsForm(skills []string) *TagList {
	return NewTagList("skill", skills)
}

// SetCurrentlyWorking flips the open-ended flag on one experience entry,
// dropping the end date when the position becomes current.
func SetCurrentlyWorking(f *ListForm[profile.Experience], i int, current bool) {
	f.Change(i, func(e *profile.Experience) {
		e.CurrentlyWorking = current
		if current {
			e.EndDate = ""
		}
	})
}
