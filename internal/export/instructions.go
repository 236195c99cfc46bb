package export

// Static generation instructions appended after the intake data. These are
// fixed templates per document type, never computed.

var ipsInstructions = []string{
	"You are an investment advisor representative drafting a formal Investment Policy Statement (IPS) for the client above.",
	"Using the intake data provided, generate a comprehensive, personalized IPS document following this structure:",
	"",
	"1. EXECUTIVE SUMMARY — Brief overview of situation, goals, recommended strategy.",
	"",
	"2. INVESTOR PROFILE — Personal background, employment, income, net worth, dependents, insurance, accounts from Section 1.",
	"",
	"3. INVESTMENT OBJECTIVES",
	"   A. Return Objectives: Derive a reasonable return target from goals, milestones, income needs, and growth preferences (Section 2). Justify a range based on goals and time horizon — do NOT simply restate a client-provided number.",
	"   B. Risk Objectives: Synthesize willingness (Section 3 behavioral responses) with capacity (financial cushion, income stability). Classify as Conservative / Moderately Conservative / Moderate / Moderately Aggressive / Aggressive with rationale.",
	"",
	"4. INVESTMENT CONSTRAINTS",
	"   A. Time Horizon — from Section 4 with flexibility notes.",
	"   B. Liquidity — from Section 5 with quantified needs.",
	"   C. Tax — from Section 6 with asset location recommendations.",
	"   D. Legal & Regulatory — from Section 7.",
	"   E. Unique Circumstances — from Section 8.",
	"",
	"5. ASSET ALLOCATION POLICY — Target percentages, ±5% permissible ranges, prohibited investments per client preferences, vehicle preferences.",
	"",
	"6. REBALANCING POLICY — Consistent with Section 10 review preferences.",
	"",
	"7. PERFORMANCE BENCHMARKS — Blended benchmark matching the proposed allocation.",
	"",
	"8. MONITORING & REVIEW — Reporting frequency, review schedule, communication preferences, revision triggers from Section 10.",
	"",
	"9. ROLES & RESPONSIBILITIES — Advisor and client duties. Incorporate delegation/authority from Section 9.",
	"",
	"10. SIGNATURES — Blocks for client, co-client/spouse (if applicable per marital status), and advisor.",
	"",
	"FORMATTING REQUIREMENTS:",
	"- Use formal, professional language appropriate for a legal/financial document.",
	"- Where the client left a question unanswered ([NO RESPONSE PROVIDED]), note it as \"To be discussed\" or \"Pending client input\" — do not guess.",
	"- Include the client's name and date throughout as appropriate.",
	"- The IPS should be a standalone document ready for client review, not a summary of the questionnaire.",
}

var cpsInstructions = []string{
	"You are an investment advisor representative drafting a formal Custody Policy Statement (CPS) for the client's digital assets.",
	"Using the intake data provided, generate a comprehensive, personalized CPS document following this structure:",
	"",
	"1. EXECUTIVE SUMMARY — Brief overview of the client's digital asset position, custody objectives, and recommended custody model.",
	"",
	"2. DIGITAL ASSET PROFILE — Experience level, current holdings, existing custody arrangements, and security history from Section 1.",
	"",
	"3. CUSTODY MODEL RECOMMENDATION — Recommend self-custody, third-party custody, or a hybrid split based on the client's risk tolerance, key management comfort, and security awareness (Section 2). Justify the recommendation; do NOT simply restate the client's stated preference.",
	"",
	"4. SECURITY POLICY — Required security practices (key management, backups, authentication, storage media) reconciling the client's current practices with the recommended model.",
	"",
	"5. ACCESS & OPERATIONS — Access frequency, transaction procedures, and use-case provisions from Section 3, including any integration with the traditional portfolio.",
	"",
	"6. COST & SERVICE PROVIDERS — Custody budget and candidate solutions or providers consistent with Section 3 budget responses.",
	"",
	"7. REGULATORY & TAX COMPLIANCE — Jurisdiction, reporting requirements, and KYC-compliant platform needs from Section 4.",
	"",
	"8. ESTATE & SUCCESSION PROVISIONS — Digital asset transfer plan, documentation requirements, and key-recovery arrangements from Section 4.",
	"",
	"9. REVIEW & REVISION — Conditions under which the custody arrangement should be revisited.",
	"",
	"10. SIGNATURES — Blocks for client and advisor.",
	"",
	"FORMATTING REQUIREMENTS:",
	"- Use formal, professional language appropriate for a legal/financial document.",
	"- Where the client left a question unanswered ([NO RESPONSE PROVIDED]), note it as \"To be discussed\" or \"Pending client input\" — do not guess.",
	"- Include the client's name and date throughout as appropriate.",
	"- The CPS should be a standalone document ready for client review, not a summary of the questionnaire.",
}
