package schema

// cpsSchema holds the Custody Policy Statement questionnaire for digital
// assets. It shares all structural rules with the IPS schema; its ids live
// in a disjoint cps<N> namespace so both sets of answers coexist in one
// client record.
var cpsSchema = Schema{
	Name: "CPS",
	Sections: []Section{
		{
			Num:         1,
			Title:       "Digital Asset Background",
			Subtitle:    "Experience, holdings, and current custody",
			Instruction: "This section establishes the client's cryptocurrency experience and current position.",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:       "cps1",
							Text:     "What is your level of experience with cryptocurrencies? What is your most advanced exposure?",
							Type:     TypeCombo,
							Options:  []string{"Beginner", "Intermediate", "Expert"},
							FollowUp: "Describe your most advanced exposure:",
						},
						{
							ID:   "cps2",
							Text: "What types of crypto assets do you currently own or plan to acquire?",
							Type: TypeCheck,
							Options: []string{
								"Bitcoin", "Ethereum", "Altcoins", "NFTs",
								"Stablecoins", "DeFi Tokens", "None Currently",
							},
							NoneOptions: []string{"None Currently"},
							FollowUp:    "Other assets or details:",
						},
						{
							ID:   "cps3",
							Text: "Approximately what is the total value of your crypto holdings?",
							Type: TypeCombo,
							Options: []string{
								"$50,000–$100,000", "$100,000–$250,000", "$250,000–$500,000",
								"$500,000–$1M", "$1M–$2.5M", "Over $2.5M",
							},
							FollowUp: "Additional context:",
						},
						{
							ID:   "cps4",
							Text: "How are your crypto assets currently custodied?",
							Type: TypeCheck,
							Options: []string{
								"ETFs", "Digital Asset Trusts (DATs)", "Exchange (e.g., Coinbase, Kraken)",
								"Hardware Wallet (e.g., Ledger, Trezor)", "Software Wallet", "Paper Wallet",
								"Not Currently Holding",
							},
							NoneOptions: []string{"Not Currently Holding"},
							FollowUp:    "Specify platforms or devices:",
						},
						{
							ID:   "cps5",
							Text: "Have you ever experienced any security incidents with your crypto, such as hacks, lost keys, or scams? If so, how did you react?",
							Type: TypeText,
						},
					},
				},
			},
		},

		{
			Num:         2,
			Title:       "Risk & Security Preferences",
			Subtitle:    "Custody approach, key management, and security practices",
			Instruction: "Determines the appropriate custody model based on the client's risk tolerance and technical comfort.",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:   "cps6",
							Text: "What is your risk tolerance for crypto custody?",
							Type: TypeCombo,
							Options: []string{
								"Self-Custody (full control)", "Third-Party Custody (convenience & insurance)",
								"Hybrid (split between both)", "Unsure — Need Guidance",
							},
							FollowUp: "Additional thoughts:",
						},
						{
							ID:       "cps7",
							Text:     "Are you comfortable managing private keys yourself, or would you prefer a custodial service?",
							Type:     TypeCombo,
							Options:  []string{"Comfortable Self-Managing", "Prefer Custodial Service", "Open to Either"},
							FollowUp: "Notes:",
						},
						{
							ID:      "cps8",
							Text:    "Are you aware of the risks associated with self-custody (asset loss, social engineering, and wrench attacks)?",
							Type:    TypeCombo,
							Options: []string{"Yes, Fully Aware", "Somewhat Aware", "Not Aware — Need Education"},
						},
						{
							ID:   "cps9",
							Text: "Do you prioritize any of the following custody features?",
							Type: TypeCheck,
							Options: []string{
								"Multi-Signature Wallets", "Cold Storage", "Insurance Against Theft/Loss",
								"Geographic Distribution", "Institutional-Grade Security", "No Specific Preferences",
							},
							NoneOptions: []string{"No Specific Preferences"},
							FollowUp:    "Other priorities:",
						},
						{
							ID:   "cps10",
							Text: "What security practices do you currently use?",
							Type: TypeCheck,
							Options: []string{
								"Two-Factor Authentication (2FA)", "Seed Phrase Backups", "Hardware Security Modules",
								"Password Manager", "Biometric Authentication", "Air-Gapped Devices", "None",
							},
							NoneOptions: []string{"None"},
							FollowUp:    "Other practices:",
						},
					},
				},
			},
		},

		{
			Num:      3,
			Title:    "Goals & Usage",
			Subtitle: "Investment objectives, access frequency, and budget",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:   "cps11",
							Text: "What are your primary goals for these crypto assets?",
							Type: TypeCheck,
							Options: []string{
								"Long-Term Investment (HODL)", "Active Trading", "Staking / Yield Farming",
								"DeFi Participation", "Payments / Transactions", "Portfolio Diversification",
							},
							FollowUp: "Additional objectives:",
						},
						{
							ID:      "cps12",
							Text:    "How frequently do you plan to access or transact with your crypto?",
							Type:    TypeCombo,
							Options: []string{"Daily", "Weekly", "Monthly", "Quarterly", "Rarely"},
						},
						{
							ID:   "cps13",
							Text: "Are there specific use cases, like integrating with traditional portfolios or using crypto for payments?",
							Type: TypeText,
						},
						{
							ID:   "cps14",
							Text: "What budget do you have for custody solutions?",
							Type: TypeCombo,
							Options: []string{
								"Minimal (free / low-cost tools)", "Moderate ($50–$300/yr for hardware/subscriptions)",
								"Significant (institutional custodian fees)", "Need Guidance on Options",
							},
							FollowUp: "Notes:",
						},
					},
				},
			},
		},

		{
			Num:         4,
			Title:       "Regulatory & Estate Planning",
			Subtitle:    "Jurisdiction, tax compliance, and succession",
			Instruction: "Ensures custody solutions meet regulatory requirements and estate planning needs.",
			Subsections: []Subsection{
				{
					Questions: []Question{
						{
							ID:   "cps15",
							Text: "In which jurisdictions are you tax-resident or hold citizenship?",
							Type: TypeText,
						},
						{
							ID:   "cps16",
							Text: "Are you aware of tax implications for your crypto holdings? Do you need custody options that support reporting (e.g., KYC-compliant platforms)?",
							Type: TypeCombo,
							Options: []string{
								"Yes, Aware — Need Compliant Platform", "Somewhat Aware",
								"Not Aware — Need Education", "Already Working with a CPA on This",
							},
							FollowUp: "Details:",
						},
						{
							ID:      "cps17",
							Text:    "Do you have an estate plan for the transfer of your digital assets?",
							Type:    TypeCombo,
							Options: []string{"Yes, Fully Documented", "Partially — Needs Updating", "No — Need to Create One"},
							FollowUp: "Details or concerns:",
						},
					},
				},
			},
		},
	},
}
