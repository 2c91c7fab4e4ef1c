package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourses(t *testing.T) {
	courses := Courses()
	require.Len(t, courses, 3)

	seen := map[string]bool{}
	for _, c := range courses {
		assert.False(t, seen[c.Slug], "duplicate slug %s", c.Slug)
		seen[c.Slug] = true
		assert.NotEmpty(t, c.Instructor.Name, "course %s has no instructor", c.ID)
		require.Len(t, c.Modules, 2)
		assert.Len(t, c.Modules[0].Lessons, 2)
	}
	assert.Equal(t, "Sofia Park", courses[1].Instructor.Name)
}

func TestCoursesAreIndependentCopies(t *testing.T) {
	first := Courses()
	first[0].Title = "changed"
	first[0].Tags[0] = "changed"

	second := Courses()
	assert.Equal(t, "Build a Video Learning Platform with Next.js & NestJS", second[0].Title)
	assert.Equal(t, "video", second[0].Tags[0])
}

func TestLookups(t *testing.T) {
	c, ok := CourseBySlug("ai-personalization-learning")
	require.True(t, ok)
	assert.Equal(t, "course-3", c.ID)

	_, ok = CourseBySlug("missing")
	assert.False(t, ok)

	c, ok = CourseByID("course-2")
	require.True(t, ok)
	assert.Equal(t, "designing-cohort-video-courses", c.Slug)
}

func TestEnrollmentsReferenceCourses(t *testing.T) {
	for _, e := range Enrollments() {
		_, ok := CourseByID(e.CourseID)
		assert.True(t, ok, "enrollment %s references unknown course %s", e.ID, e.CourseID)
	}
	assert.Empty(t, WishlistItems())
	assert.Len(t, Categories(), 6)
	assert.Len(t, Testimonials(), 2)
	assert.Len(t, LearningPaths(), 1)
}
