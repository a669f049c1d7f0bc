package memory

import (
	"go-investment-backend/internal/domain"
)

type contentRepo struct {
	pages    map[string]*domain.Page
	projects []domain.Project
}

// NewContentRepository builds the static content store. The site's copy is
// authored Arabic-first; display order follows declaration order.
func NewContentRepository() domain.ContentRepository {
	repo := &contentRepo{
		pages:    make(map[string]*domain.Page),
		projects: projects,
	}
	for _, page := range pages {
		repo.pages[page.Slug] = page
	}
	return repo
}

func (r *contentRepo) GetPage(slug string) (*domain.Page, bool) {
	page, ok := r.pages[slug]
	return page, ok
}

func (r *contentRepo) ListProjects() []domain.Project {
	return r.projects
}

func (r *contentRepo) GetProject(slug string) (*domain.Project, bool) {
	for i := range r.projects {
		if r.projects[i].Slug == slug {
			return &r.projects[i], true
		}
	}
	return nil, false
}

var pages = []*domain.Page{
	{
		Slug: "home",
		Title: domain.LocalizedText{
			Ar: "مسار للاستثمار",
			En: "Masar Investment",
		},
		Intro: domain.LocalizedText{
			Ar: "شركة استثمار وإدارة مشاريع تبني فرصاً عقارية موثوقة بنموذج الحق المرحلي.",
			En: "An investment and project-management firm building trusted real-estate opportunities on the milestone-right model.",
		},
		Sections: []domain.Section{
			{
				Title: domain.LocalizedText{Ar: "لماذا مسار", En: "Why Masar"},
				Items: []domain.Item{
					{
						Label: domain.LocalizedText{Ar: "الشفافية", En: "Transparency"},
						Value: domain.LocalizedText{
							Ar: "تقارير دورية عن تقدم كل مشروع ومراحل الصرف.",
							En: "Periodic reporting on every project's progress and disbursement stages.",
						},
					},
					{
						Label: domain.LocalizedText{Ar: "الانضباط", En: "Discipline"},
						Value: domain.LocalizedText{
							Ar: "لا يُصرف رأس المال إلا عند اكتمال مرحلة موثقة.",
							En: "Capital is released only when a documented milestone completes.",
						},
					},
					{
						Label: domain.LocalizedText{Ar: "الخبرة", En: "Experience"},
						Value: domain.LocalizedText{
							Ar: "فريق أشرف على تطوير مشاريع سكنية وتجارية في عدة مدن.",
							En: "A team that has delivered residential and commercial developments across several cities.",
						},
					},
				},
			},
			{
				Title: domain.LocalizedText{Ar: "أرقامنا", En: "Our Numbers"},
				Items: []domain.Item{
					{
						Label: domain.LocalizedText{Ar: "مشاريع مكتملة", En: "Completed projects"},
						Value: domain.LocalizedText{Ar: "14", En: "14"},
					},
					{
						Label: domain.LocalizedText{Ar: "قيمة الأصول المدارة", En: "Assets under management"},
						Value: domain.LocalizedText{Ar: "320 مليون ريال", En: "SAR 320M"},
					},
					{
						Label: domain.LocalizedText{Ar: "شركاء استثماريون", En: "Investment partners"},
						Value: domain.LocalizedText{Ar: "+200", En: "200+"},
					},
				},
			},
		},
	},
	{
		Slug: "about",
		Title: domain.LocalizedText{
			Ar: "من نحن",
			En: "About Us",
		},
		Intro: domain.LocalizedText{
			Ar: "تأسست مسار لتكون جسراً بين المستثمر الباحث عن عائد مستقر والمشاريع العقارية الجادة.",
			En: "Masar was founded to bridge investors seeking stable returns and serious real-estate developments.",
		},
		Sections: []domain.Section{
			{
				Title: domain.LocalizedText{Ar: "رؤيتنا", En: "Our Vision"},
				Body: domain.LocalizedText{
					Ar: "أن نكون الخيار الأول للاستثمار العقاري المنضبط في المنطقة.",
					En: "To be the region's first choice for disciplined real-estate investment.",
				},
			},
			{
				Title: domain.LocalizedText{Ar: "رسالتنا", En: "Our Mission"},
				Body: domain.LocalizedText{
					Ar: "حماية رأس مال المستثمر عبر ربط الصرف بإنجاز فعلي مُوثق.",
					En: "Protecting investor capital by tying disbursement to documented, real progress.",
				},
			},
			{
				Title: domain.LocalizedText{Ar: "قيمنا", En: "Our Values"},
				Items: []domain.Item{
					{
						Label: domain.LocalizedText{Ar: "الأمانة", En: "Integrity"},
						Value: domain.LocalizedText{
							Ar: "نتعامل مع أموال شركائنا كما نتعامل مع أموالنا.",
							En: "We treat our partners' money as our own.",
						},
					},
					{
						Label: domain.LocalizedText{Ar: "الوضوح", En: "Clarity"},
						Value: domain.LocalizedText{
							Ar: "عقود مفصلة ولغة مفهومة بلا بنود مخفية.",
							En: "Detailed contracts in plain language with no hidden clauses.",
						},
					},
				},
			},
		},
	},
	{
		Slug: "milestone-right",
		Title: domain.LocalizedText{
			Ar: "الحق المرحلي",
			En: "The Milestone Right",
		},
		Intro: domain.LocalizedText{
			Ar: "نموذج استثماري يمنح المستثمر حق الاطلاع والتحكم في صرف رأس المال مرحلةً بمرحلة.",
			En: "An investment model granting investors visibility and control over capital release, stage by stage.",
		},
		Sections: []domain.Section{
			{
				Title: domain.LocalizedText{Ar: "كيف يعمل", En: "How It Works"},
				Items: []domain.Item{
					{
						Label: domain.LocalizedText{Ar: "١. الإيداع", En: "1. Deposit"},
						Value: domain.LocalizedText{
							Ar: "يُودع رأس المال في حساب ضمان مستقل عن حسابات المطور.",
							En: "Capital is deposited into an escrow account separate from the developer's accounts.",
						},
					},
					{
						Label: domain.LocalizedText{Ar: "٢. التقسيم", En: "2. Staging"},
						Value: domain.LocalizedText{
							Ar: "يُقسم المشروع إلى مراحل إنجاز محددة بمستندات قبول واضحة.",
							En: "The project is divided into defined milestones with clear acceptance documents.",
						},
					},
					{
						Label: domain.LocalizedText{Ar: "٣. التحقق", En: "3. Verification"},
						Value: domain.LocalizedText{
							Ar: "يتحقق مكتب هندسي مستقل من اكتمال كل مرحلة قبل أي صرف.",
							En: "An independent engineering office verifies each milestone before any disbursement.",
						},
					},
					{
						Label: domain.LocalizedText{Ar: "٤. الصرف", En: "4. Release"},
						Value: domain.LocalizedText{
							Ar: "يُصرف الجزء المخصص للمرحلة المكتملة فقط ويبقى الباقي محفوظاً.",
							En: "Only the completed stage's share is released; the remainder stays protected.",
						},
					},
				},
			},
			{
				Title: domain.LocalizedText{Ar: "ما يضمنه لك النموذج", En: "What the Model Guarantees"},
				Items: []domain.Item{
					{
						Label: domain.LocalizedText{Ar: "حماية رأس المال", En: "Capital protection"},
						Value: domain.LocalizedText{
							Ar: "لا يصل المال للمطور قبل إثبات الإنجاز.",
							En: "Funds never reach the developer before progress is proven.",
						},
					},
					{
						Label: domain.LocalizedText{Ar: "حق الانسحاب", En: "Right of withdrawal"},
						Value: domain.LocalizedText{
							Ar: "للمستثمر استرداد المبالغ غير المصروفة عند تعثر المشروع.",
							En: "Investors may reclaim undisbursed funds if the project stalls.",
						},
					},
				},
			},
		},
	},
}

var projects = []domain.Project{
	{
		Slug: "narjes-residence",
		Name: domain.LocalizedText{
			Ar: "مساكن النرجس",
			En: "Narjes Residence",
		},
		Summary: domain.LocalizedText{
			Ar: "مجمع سكني من 48 وحدة بحي النرجس، بُني وسُلِّم على أربع مراحل مرحلية.",
			En: "A 48-unit residential compound in Al Narjes district, built and delivered across four milestones.",
		},
		Sector: domain.LocalizedText{Ar: "سكني", En: "Residential"},
		City:   domain.LocalizedText{Ar: "الرياض", En: "Riyadh"},
		Highlights: []domain.Item{
			{
				Label: domain.LocalizedText{Ar: "مدة التنفيذ", En: "Build time"},
				Value: domain.LocalizedText{Ar: "22 شهراً", En: "22 months"},
			},
			{
				Label: domain.LocalizedText{Ar: "نسبة الإشغال", En: "Occupancy"},
				Value: domain.LocalizedText{Ar: "96٪", En: "96%"},
			},
		},
	},
	{
		Slug: "marsa-plaza",
		Name: domain.LocalizedText{
			Ar: "مرسى بلازا",
			En: "Marsa Plaza",
		},
		Summary: domain.LocalizedText{
			Ar: "مركز تجاري على الواجهة البحرية بعقود تأجير طويلة مع علامات إقليمية.",
			En: "A waterfront retail center with long leases to regional brands.",
		},
		Sector: domain.LocalizedText{Ar: "تجاري", En: "Commercial"},
		City:   domain.LocalizedText{Ar: "جدة", En: "Jeddah"},
		Highlights: []domain.Item{
			{
				Label: domain.LocalizedText{Ar: "المساحة التأجيرية", En: "Leasable area"},
				Value: domain.LocalizedText{Ar: "12,400 م²", En: "12,400 sqm"},
			},
		},
	},
	{
		Slug: "wadi-logistics-park",
		Name: domain.LocalizedText{
			Ar: "مجمع الوادي اللوجستي",
			En: "Wadi Logistics Park",
		},
		Summary: domain.LocalizedText{
			Ar: "مستودعات حديثة قرب الميناء الجاف، قيد التنفيذ على ست مراحل.",
			En: "Modern warehousing near the dry port, under construction across six milestones.",
		},
		Sector: domain.LocalizedText{Ar: "لوجستي", En: "Logistics"},
		City:   domain.LocalizedText{Ar: "الدمام", En: "Dammam"},
		Highlights: []domain.Item{
			{
				Label: domain.LocalizedText{Ar: "المرحلة الحالية", En: "Current stage"},
				Value: domain.LocalizedText{Ar: "الثالثة من ست", En: "3 of 6"},
			},
		},
	},
}
