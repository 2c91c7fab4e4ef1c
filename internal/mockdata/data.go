// Package mockdata holds the bundled sample catalog served when the backend
// is unreachable or mock mode is on. Every accessor builds fresh values, so
// callers may modify what they get back.
package mockdata

import "vulearn/internal/model"

const courseUpdatedAt = "2025-01-04T00:00:00.000Z"

func Instructors() []model.Instructor {
	return []model.Instructor{
		{
			ID:        "inst-1",
			Name:      "Amelia Nguyen",
			Title:     "Principal Software Engineer, Streamly",
			AvatarURL: "/images/instructors/amelia.png",
			Bio:       "10+ years building video platforms, focusing on streaming optimization and engaging learner experiences.",
			Students:  48000,
			Reviews:   4200,
		},
		{
			ID:        "inst-2",
			Name:      "Mateo Rodriguez",
			Title:     "Lead AI Instructor, Coders Guild",
			AvatarURL: "/images/instructors/mateo.png",
			Bio:       "Former Udemy instructor of the year with a passion for applied AI in education.",
			Students:  82000,
			Reviews:   6100,
		},
		{
			ID:        "inst-3",
			Name:      "Sofia Park",
			Title:     "Senior Product Designer, Aurora",
			AvatarURL: "/images/instructors/sofia.png",
			Bio:       "Specializes in human-centered design and turning complex tools into delightful learner journeys.",
			Students:  36000,
			Reviews:   3400,
		},
	}
}

func instructor(id string) model.Instructor {
	for _, it := range Instructors() {
		if it.ID == id {
			return it
		}
	}
	return model.Instructor{ID: id}
}

type courseSeed struct {
	id, title, slug string
	level           model.CourseLevel
	categories      []string
	durationMinutes int
	instructorID    string
	thumbnailColor  string
}

func buildCourse(s courseSeed) model.Course {
	return model.Course{
		ID:              s.id,
		Title:           s.title,
		Slug:            s.slug,
		Description:     "Everything you need to plan, produce, and ship a premium video learning platform inspired by Udemy.",
		Level:           s.level,
		IsPublished:     true,
		Categories:      s.categories,
		DurationMinutes: s.durationMinutes,
		Rating:          4.8,
		RatingCount:     1850,
		Students:        52000,
		Price:           19.99,
		Currency:        "USD",
		Language:        "English",
		Tags:            []string{"video", "learning", "frontend", "design"},
		ThumbnailColor:  s.thumbnailColor,
		UpdatedAt:       courseUpdatedAt,
		Instructor:      instructor(s.instructorID),
		Highlights: []string{
			"Hands-on projects based on real production scenarios",
			"Downloadable resources + lifetime updates",
			"Certificate of completion backed by hiring partners",
		},
		WhatYouWillLearn: []string{
			"Build a production-ready video learning experience from scratch",
			"Design engaging course outlines that mirror high-performing marketplaces",
			"Ship performant UI flows for browsing, enrolling, and completing lessons",
		},
		Requirements: []string{
			"A modern browser and editor",
			"Basic familiarity with JavaScript/TypeScript",
			"Curiosity to build learner-first experiences",
		},
		Modules: []model.CourseModule{
			{
				ID:          s.id + "-m1",
				Title:       "Foundations",
				Description: "Craft the product vision and learner journey.",
				Lessons: []model.Lesson{
					{ID: s.id + "-l1", Title: "Mapping marketplace expectations", DurationMinutes: 18, IsPreview: true, VideoStatus: model.VideoReady},
					{ID: s.id + "-l2", Title: "Design systems for course discovery", DurationMinutes: 24, VideoStatus: model.VideoReady},
				},
			},
			{
				ID:          s.id + "-m2",
				Title:       "Implementation",
				Description: "Translate UX into resilient components.",
				Lessons: []model.Lesson{
					{ID: s.id + "-l3", Title: "Building catalog sections", DurationMinutes: 32, VideoStatus: model.VideoReady},
					{ID: s.id + "-l4", Title: "Integrating with NestJS backend", DurationMinutes: 27, VideoStatus: model.VideoProcessing},
				},
			},
		},
	}
}

// Courses returns the three sample courses.
func Courses() []model.Course {
	return []model.Course{
		buildCourse(courseSeed{
			id:              "course-1",
			title:           "Build a Video Learning Platform with Next.js & NestJS",
			slug:            "video-learning-platform-nextjs-nestjs",
			level:           model.LevelIntermediate,
			categories:      []string{"Web Development", "Productivity"},
			durationMinutes: 640,
			instructorID:    "inst-1",
			thumbnailColor:  "from-purple-500 via-fuchsia-500 to-orange-400",
		}),
		buildCourse(courseSeed{
			id:              "course-2",
			title:           "Designing Cohort-Based Video Courses",
			slug:            "designing-cohort-video-courses",
			level:           model.LevelBeginner,
			categories:      []string{"Design"},
			durationMinutes: 420,
			instructorID:    "inst-3",
			thumbnailColor:  "from-sky-500 via-blue-500 to-indigo-500",
		}),
		buildCourse(courseSeed{
			id:              "course-3",
			title:           "AI Personalization for Learning Marketplaces",
			slug:            "ai-personalization-learning",
			level:           model.LevelAdvanced,
			categories:      []string{"AI & ML"},
			durationMinutes: 560,
			instructorID:    "inst-2",
			thumbnailColor:  "from-emerald-500 via-green-500 to-lime-400",
		}),
	}
}

// CourseByID returns the sample course with id, if any.
func CourseByID(id string) (model.Course, bool) {
	for _, c := range Courses() {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

func CourseBySlug(slug string) (model.Course, bool) {
	for _, c := range Courses() {
		if c.Slug == slug {
			return c, true
		}
	}
	return model.Course{}, false
}

func Categories() []string {
	return []string{
		"Web Development",
		"Design",
		"Productivity",
		"Cloud & DevOps",
		"AI & ML",
		"Data Visualization",
	}
}

func Testimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ID:          "test-1",
			Quote:       "We shipped our course marketplace MVP in six weeks using the exact flow from this project.",
			LearnerName: "Priya Desai",
			Role:        "PM, LaunchPad",
			CourseID:    "course-1",
		},
		{
			ID:          "test-2",
			Quote:       "The curriculum structure mirrors what high-performing Udemy courses do. It saved our design team months.",
			LearnerName: "Nico Alvarez",
			Role:        "Design Lead, StudioX",
			CourseID:    "course-2",
		},
	}
}

func Enrollments() []model.Enrollment {
	return []model.Enrollment{
		{ID: "enroll-1", CourseID: "course-1", ProgressPercent: 62, LastAccessed: "2025-01-05T08:15:00.000Z"},
		{ID: "enroll-2", CourseID: "course-3", ProgressPercent: 34, LastAccessed: "2024-12-29T18:40:00.000Z"},
	}
}

// WishlistItems is empty in the bundled data set.
func WishlistItems() []model.WishlistItem {
	return []model.WishlistItem{}
}

func LearningPaths() []model.LearningPath {
	return []model.LearningPath{
		{
			ID:    "path-1",
			Title: "Ship a production-ready video learning startup",
			Steps: []string{
				"Lay the UX + product foundations",
				"Build catalog & discovery experiences",
				"Instrument enrollments, progress, and quizzes",
				"Polish dashboards + certificate flows",
			},
		},
	}
}
