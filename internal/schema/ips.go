package schema

// ipsSchema holds the Investment Policy Statement intake questionnaire.
// Ids are stable storage keys; display numbers are derived, so questions
// must never be reordered without migrating stored answers.
var ipsSchema = Schema{
	Name: "IPS",
	Sections: []Section{
		{
			Num:         1,
			Title:       "Investor Profile & Background",
			Subtitle:    "Personal, financial, and experience baseline",
			Instruction: "This section establishes the client's personal and financial baseline.",
			Subsections: []Subsection{
				{
					Label: "Personal Information",
					Questions: []Question{
						{
							ID:   "q1",
							Text: "What is your full name, date of birth, and contact information?",
							Type: TypeText,
						},
						{
							ID:       "q2",
							Text:     "What is your marital status, and do you have any dependents?",
							Type:     TypeCombo,
							Options:  []string{"Single", "Married", "Divorced", "Widowed", "Domestic Partnership"},
							FollowUp: "List dependents and their ages:",
						},
						{
							ID:       "q3",
							Text:     "What is your current occupation and employment status?",
							Type:     TypeCombo,
							Options:  []string{"Employed Full-Time", "Employed Part-Time", "Self-Employed", "Retired", "Unemployed"},
							FollowUp: "Employer and job title:",
						},
					},
				},
				{
					Label: "Financial Overview",
					Questions: []Question{
						{
							ID:   "q4",
							Text: "What is your annual income from all sources (salary, bonuses, business income, rental income, Social Security, pensions, other)?",
							Type: TypeText,
						},
						{
							ID:   "q5",
							Text: "What are your current monthly and annual living expenses?",
							Type: TypeText,
						},
						{
							ID:   "q6",
							Text: "What is your approximate net worth? Please list major assets and liabilities.",
							Type: TypeAssetsLiabilities,
						},
					},
				},
				{
					Label: "Existing Accounts & Holdings",
					Questions: []Question{
						{
							ID:   "q7",
							Text: "Please list all investment, retirement, and bank accounts (types, custodians, balances).",
							Type: TypeText,
						},
						{
							ID:   "q8",
							Text: "Do you hold any concentrated positions (company stock, inherited holdings, single large asset)?",
							Type: TypeText,
						},
						{
							ID:       "q9",
							Text:     "How are your current accounts titled? Are beneficiary designations current?",
							Type:     TypeCheck,
							Options:  []string{"Individual", "Joint Tenants", "Trust", "Community Property", "TOD/POD", "Other"},
							FollowUp: "Beneficiary details:",
						},
					},
				},
				{
					Label: "Insurance Coverage",
					Questions: []Question{
						{
							ID:          "q10",
							Text:        "Do you carry life insurance? Type and coverage amount?",
							Type:        TypeCheck,
							Options:     []string{"Term Life", "Whole Life", "Universal Life", "Variable Life", "No Life Insurance"},
							NoneOptions: []string{"No Life Insurance"},
							FollowUp:    "Coverage details:",
						},
						{
							ID:          "q11",
							Text:        "Disability, long-term care, and/or umbrella liability coverage?",
							Type:        TypeCheck,
							Options:     []string{"Disability Insurance", "Long-Term Care Insurance", "Umbrella Liability", "None"},
							NoneOptions: []string{"None"},
							FollowUp:    "Details:",
						},
					},
				},
				{
					Label: "Investment Experience",
					Questions: []Question{
						{
							ID:       "q12",
							Text:     "What is your level of investment experience? What asset classes have you invested in?",
							Type:     TypeCombo,
							Options:  []string{"Beginner", "Intermediate", "Advanced"},
							FollowUp: "Other asset classes:",
							FollowUpCheck: []string{
								"Stocks", "Bonds", "Mutual Funds/ETFs", "Real Estate",
								"Alternatives", "Options/Derivatives", "Cryptocurrency",
							},
						},
						{
							ID:   "q13",
							Text: "Have you worked with an investment advisor before? What went well / what would you change?",
							Type: TypeText,
						},
					},
				},
				{
					Label: "Professional Team",
					Questions: []Question{
						{
							ID:   "q14",
							Text: "Do you have an existing financial plan, IPS, or estate plan we should review? If so, how can we access it?",
							Type: TypeText,
						},
						{
							ID:   "q15",
							Text: "Do you work with a CPA, attorney, or other professionals? Provide contact info.",
							Type: TypeText,
						},
					},
				},
			},
		},

		{
			Num:         2,
			Title:       "Investment Objectives",
			Subtitle:    "Goals, milestones, and values",
			Instruction: "Objectives define what this portfolio is designed to achieve.",
			Subsections: []Subsection{
				{
					Label: "Goals & Milestones",
					Questions: []Question{
						{
							ID:       "q16",
							Text:     "What are your primary investment goals?",
							Type:     TypeCheck,
							Options:  []string{"Capital Preservation", "Income Generation", "Growth", "Aggressive Growth"},
							FollowUp: "Additional detail:",
						},
						{
							ID:   "q17",
							Text: "Do you have specific financial milestones? Provide goal, target amount, and timeline for each.",
							Type: TypeGoals,
						},
					},
				},
				{
					Label: "Income & Growth",
					Questions: []Question{
						{
							ID:   "q18",
							Text: "Are you seeking current income from investments? How much annually?",
							Type: TypeText,
						},
						{
							ID:   "q19",
							Text: "Capital appreciation vs. income stability?",
							Type: TypeCombo,
							Options: []string{
								"Strongly Favor Stability", "Slightly Favor Stability", "Equal Priority",
								"Slightly Favor Growth", "Strongly Favor Growth",
							},
							FollowUp: "Notes:",
						},
					},
				},
				{
					Label: "Values-Based Preferences",
					Questions: []Question{
						{
							ID:   "q20",
							Text: "Ethical, social, environmental, religious, or cultural investment preferences?",
							Type: TypeCheck,
							Options: []string{
								"ESG / Socially Responsible", "Faith-Based", "Avoid Tobacco", "Avoid Firearms",
								"Avoid Fossil Fuels", "Avoid Gambling", "Avoid Alcohol", "No Preferences",
							},
							NoneOptions: []string{"No Preferences"},
							FollowUp:    "Other restrictions:",
						},
					},
				},
			},
		},

		{
			Num:         3,
			Title:       "Time Horizon",
			Subtitle:    "Duration and flexibility",
			Instruction: "Affects volatility tolerance and appropriate investments.",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:       "q27",
							Text:     "Expected investment duration?",
							Type:     TypeCombo,
							Options:  []string{"Short-Term (< 5 yr)", "Medium-Term (5–10 yr)", "Long-Term (10+ yr)"},
							FollowUp: "Target date/age:",
						},
						{
							ID:   "q28",
							Text: "When do you anticipate needing funds?",
							Type: TypeText,
						},
						{
							ID:   "q29",
							Text: "Multiple time horizons for different goals?",
							Type: TypeText,
						},
						{
							ID:       "q30",
							Text:     "How flexible is your timeline?",
							Type:     TypeCombo,
							Options:  []string{"Very Flexible", "Somewhat Flexible", "Not Flexible"},
							FollowUp: "Notes:",
						},
					},
				},
			},
		},

		{
			Num:         4,
			Title:       "Risk Tolerance",
			Subtitle:    "Willingness and capacity to accept risk",
			Instruction: "A validated risk assessment tool will supplement these responses.",
			Subsections: []Subsection{
				{
					Label: "Willingness",
					Questions: []Question{
						{
							ID:       "q21",
							Text:     "How would you react to a 50% portfolio decline?",
							Type:     TypeCombo,
							Options:  []string{"Sell Everything", "Sell Some", "Hold Steady", "Buy More"},
							FollowUp: "Thoughts:",
						},
						{
							ID:       "q22",
							Text:     "Maximum annual decline you could tolerate?",
							Type:     TypeCombo,
							Options:  []string{"10%", "20%", "30%", "40%", "50%", "60%", "70%+"},
							FollowUp: "Notes:",
						},
						{
							ID:   "q23",
							Text: "Past major investment losses? Emotional and financial impact?",
							Type: TypeText,
						},
					},
				},
				{
					Label: "Capacity",
					Questions: []Question{
						{
							ID:       "q24",
							Text:     "Emergency fund size (months)? Held outside this portfolio?",
							Type:     TypeCombo,
							Options:  []string{"< 3 months", "3–6 months", "6–12 months", "12+ months"},
							FollowUp: "Outside this portfolio?",
						},
						{
							ID:   "q25",
							Text: "Health, employment, or family factors affecting loss tolerance?",
							Type: TypeText,
						},
						{
							ID:       "q26",
							Text:     "Income stability? Could it change significantly?",
							Type:     TypeCombo,
							Options:  []string{"Very Stable", "Mostly Stable", "Somewhat Variable", "Highly Variable"},
							FollowUp: "Details:",
						},
					},
				},
			},
		},

		{
			Num:         5,
			Title:       "Liquidity Needs",
			Subtitle:    "Cash flow requirements",
			Instruction: "Ensures no forced selling.",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:       "q31",
							Text:     "Percentage that must remain liquid?",
							Type:     TypeCombo,
							Options:  []string{"0–5%", "5–10%", "10–20%", "20%+"},
							FollowUp: "Details:",
						},
						{
							ID:   "q32",
							Text: "Major cash needs within 1–3 years?",
							Type: TypeText,
						},
						{
							ID:   "q33",
							Text: "Liquidity restrictions from current assets?",
							Type: TypeText,
						},
					},
				},
			},
		},

		{
			Num:         6,
			Title:       "Tax Considerations",
			Subtitle:    "Status, accounts, efficiency",
			Instruction: "Advisor will coordinate with your CPA.",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:       "q34",
							Text:     "Filing status and tax bracket?",
							Type:     TypeCombo,
							Options:  []string{"Single", "Married Filing Jointly", "Married Filing Separately", "Head of Household"},
							FollowUp: "Bracket:",
						},
						{
							ID:   "q35",
							Text: "Tax-advantaged accounts and balances?",
							Type: TypeCheckVal,
							Options: []string{
								"401(k)", "403(b)", "Traditional IRA", "Roth IRA",
								"SEP IRA", "HSA", "529 Plan", "Pension", "None",
							},
							NoneOptions: []string{"None"},
						},
						{
							ID:   "q36",
							Text: "Tax loss carryforwards, unrealized gains, prior tax events?",
							Type: TypeText,
						},
						{
							ID:       "q37",
							Text:     "Importance of tax efficiency?",
							Type:     TypeCombo,
							Options:  []string{"Very Important", "Somewhat Important", "Not a Priority"},
							FollowUp: "Preferences:",
						},
						{
							ID:   "q38",
							Text: "International tax considerations?",
							Type: TypeText,
						},
						{
							ID:   "q39",
							Text: "Interest in tax harvesting or charitable giving strategies?",
							Type: TypeText,
						},
					},
				},
			},
		},

		{
			Num:      7,
			Title:    "Legal & Regulatory",
			Subtitle: "Restrictions, trusts, fiduciary duties",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{ID: "q40", Text: "Legal restrictions on investments?", Type: TypeText},
						{ID: "q41", Text: "Trusts, wills, or estate docs imposing guidelines?", Type: TypeText},
						{ID: "q42", Text: "Fiduciary responsibilities?", Type: TypeText},
						{ID: "q43", Text: "International residency/citizenship issues?", Type: TypeText},
					},
				},
			},
		},

		{
			Num:         8,
			Title:       "Unique Circumstances",
			Subtitle:    "Health, family, special factors",
			Instruction: "Anything that may materially affect strategy.",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:   "q44",
							Text: "Health issues or life events impacting financial needs?",
							Type: TypeText,
						},
						{
							ID:   "q45",
							Text: "Family dynamics, inheritance, or estate factors?",
							Type: TypeText,
						},
						{
							ID:       "q46",
							Text:     "Views on leverage?",
							Type:     TypeCombo,
							Options:  []string{"Comfortable", "Open to Discussion", "Prefer to Avoid"},
							FollowUp: "Notes:",
						},
						{
							ID:   "q47",
							Text: "Active vs. passive preference? Vehicle preferences?",
							Type: TypeCheck,
							Options: []string{
								"Passive/Index", "Active", "ETFs", "Mutual Funds",
								"Individual Securities", "SMAs", "No Preference",
							},
							NoneOptions: []string{"No Preference"},
							FollowUp:    "Details:",
						},
						{
							ID:   "q48",
							Text: "Anything else your advisor should know?",
							Type: TypeText,
						},
					},
				},
			},
		},

		{
			Num:         9,
			Title:       "Delegation & Authority",
			Subtitle:    "Advisory relationship",
			Instruction: "Clarifies the advisory relationship.",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:   "q49",
							Text: "Anyone else with trading authority, POA, or decision-making power?",
							Type: TypeText,
						},
						{
							ID:   "q50",
							Text: "Who should be involved in reviews?",
							Type: TypeText,
						},
					},
				},
			},
		},

		{
			Num:         10,
			Title:       "Monitoring & Review",
			Subtitle:    "Reporting and communication",
			Instruction: "Advisor will propose benchmarks and rebalancing in the IPS draft.",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:      "q52",
							Text:    "Report frequency?",
							Type:    TypeCombo,
							Options: []string{"Monthly", "Quarterly", "Semi-Annually", "Annually"},
						},
						{
							ID:      "q53",
							Text:    "Review meeting frequency?",
							Type:    TypeCombo,
							Options: []string{"Quarterly", "Semi-Annually", "Annually", "Only When Needed"},
						},
						{
							ID:      "q54",
							Text:    "Preferred communication methods?",
							Type:    TypeCheck,
							Options: []string{"In-Person", "Video Calls", "Phone", "Email", "Digital Portal"},
						},
						{
							ID:   "q55",
							Text: "Circumstances warranting IPS revision outside regular reviews?",
							Type: TypeText,
						},
					},
				},
			},
		},
	},
}
