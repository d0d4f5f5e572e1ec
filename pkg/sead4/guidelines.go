package sead4

// Condition is a cited disqualifying or mitigating condition from the
// adjudicative guidelines.
type Condition struct {
	Code string `json:"code"` // e.g. "AG ¶ 19(a)"
	Text string `json:"text"`
}

// Guideline is the published reference entry for one adjudicative guideline.
type Guideline struct {
	Code          GuidelineCode
	Name          string
	Concern       string
	Disqualifiers []Condition
	Mitigators    []Condition
}

// Guidelines is the complete SEAD-4 reference table keyed by guideline code.
// It is constructed once and never mutated.
var Guidelines = map[GuidelineCode]Guideline{
	"A": {
		Code: "A",
		Name: "Allegiance to the United States",
		Concern: "The willingness to safeguard classified or sensitive information is in doubt if " +
			"there is any reason to suspect an individual's allegiance to the United States. There is no positive " +
			"test for allegiance, but there are negative indicators. These include participation in or support " +
			"for acts against the United States or placing the welfare or interests of another country above " +
			"those of the United States.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 4(a)", Text: "involvement in, support of, training to commit, or advocacy of any act of sabotage, espionage, treason, terrorism, or sedition against the United States"},
			{Code: "AG ¶ 4(b)", Text: "association or sympathy with persons who are attempting to commit, or who are committing, any of the above acts"},
			{Code: "AG ¶ 4(c)", Text: "association or sympathy with persons or organizations that advocate, threaten, or use force or violence, or use any other illegal or unconstitutional means, in an effort to: (1) overthrow or influence the U.S. Government or any state or local government; (2) prevent Federal, state, or local government personnel from performing their official duties; (3) gain retribution for perceived wrongs caused by the Federal, state, or local government; and (4) prevent others from exercising their rights under the Constitution or laws of the United States"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 5(a)", Text: "the individual was unaware of the unlawful aims of the individual or organization and severed ties upon learning of these"},
			{Code: "AG ¶ 5(b)", Text: "the individual's involvement was humanitarian and permitted under U.S. law"},
			{Code: "AG ¶ 5(c)", Text: "involvement in the above activities occurred for only a short period of time and was attributable to curiosity or academic interest"},
			{Code: "AG ¶ 5(d)", Text: "the involvement or association with such activities occurred under such unusual circumstances, or so much time has elapsed, that it is unlikely to recur and does not cast doubt on the individual's current reliability, trustworthiness, or allegiance"},
		},
	},
	"B": {
		Code: "B",
		Name: "Foreign Influence",
		Concern: "Foreign contacts and interests, including, but not limited to, business, financial, " +
			"and property interests, are a national security concern if they result in divided allegiance. They " +
			"may also be a national security concern if they create circumstances in which the individual may " +
			"be manipulated or induced to help a foreign person, group, organization, or government in a way " +
			"inconsistent with U.S. interests or otherwise made vulnerable to pressure or coercion by any " +
			"foreign interest.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 7(a)", Text: "contact, regardless of method, with a foreign family member, business or professional associate, friend, or other person who is a citizen of or resident in a foreign country if that contact creates a heightened risk of foreign exploitation, inducement, manipulation, pressure, or coercion"},
			{Code: "AG ¶ 7(b)", Text: "connections to a foreign person, group, government, or country that create a potential conflict of interest between the individual's obligation to protect classified or sensitive information or technology and the individual's desire to help a foreign person, group, or country by providing that information or technology"},
			{Code: "AG ¶ 7(c)", Text: "failure to report or fully disclose, when required, association with a foreign person, group, government, or country"},
			{Code: "AG ¶ 7(d)", Text: "counterintelligence information, whether classified or unclassified, that indicates the individual's access to classified information or eligibility for a sensitive position may involve unacceptable risk to national security"},
			{Code: "AG ¶ 7(e)", Text: "shared living quarters with a person or persons, regardless of citizenship status, if that relationship creates a heightened risk of foreign inducement, manipulation, pressure, or coercion"},
			{Code: "AG ¶ 7(f)", Text: "substantial business, financial, or property interests in a foreign country, or in any foreign owned or foreign-operated business that could subject the individual to a heightened risk of foreign influence or exploitation or personal conflict of interest"},
			{Code: "AG ¶ 7(g)", Text: "unauthorized association with a suspected or known agent, associate, or employee of a foreign intelligence entity"},
			{Code: "AG ¶ 7(h)", Text: "indications that representatives or nationals from a foreign country are acting to increase the vulnerability of the individual to possible future exploitation, inducement, manipulation, pressure, or coercion"},
			{Code: "AG ¶ 7(i)", Text: "conduct, especially while traveling or residing outside the U.S., that may make the individual vulnerable to exploitation, pressure, or coercion by a foreign person, group, government, or country"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 8(a)", Text: "the nature of the relationships with foreign persons, the country in which these persons are located, or the positions or activities of those persons in that country are such that it is unlikely the individual will be placed in a position of having to choose between the interests of a foreign individual, group, organization, or government and the interests of the United States"},
			{Code: "AG ¶ 8(b)", Text: "there is no conflict of interest, either because the individual's sense of loyalty or obligation to the foreign person, or allegiance to the group, government, or country is so minimal, or the individual has such deep and longstanding relationships and loyalties in the United States, that the individual can be expected to resolve any conflict of interest in favor of the U.S. interest"},
			{Code: "AG ¶ 8(c)", Text: "contact or communication with foreign citizens is so casual and infrequent that there is little likelihood that it could create a risk for foreign influence or exploitation"},
			{Code: "AG ¶ 8(d)", Text: "the foreign contacts and activities are on U.S. Government business or are approved by the agency head or designee"},
			{Code: "AG ¶ 8(e)", Text: "the individual has promptly complied with existing agency requirements regarding the reporting of contacts, requests, or threats from persons, groups, or organizations from a foreign country"},
			{Code: "AG ¶ 8(f)", Text: "the value or routine nature of the foreign business, financial, or property interests is such that they are unlikely to result in a conflict and could not be used effectively to influence, manipulate, or pressure the individual"},
		},
	},
	"C": {
		Code: "C",
		Name: "Foreign Preference",
		Concern: "When an individual acts in such a way as to indicate a preference for a foreign " +
			"country over the United States, then he or she may provide information or make decisions that " +
			"are harmful to the interests of the United States. Foreign involvement raises concerns about an " +
			"individual's judgment, reliability, and trustworthiness when it is in conflict with U.S. national " +
			"interests or when the individual acts to conceal it.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 10(a)", Text: "applying for and/or acquiring citizenship in any other country"},
			{Code: "AG ¶ 10(b)", Text: "failure to report, or fully disclose when required, to an appropriate security official, the possession of a passport or identity card issued by any country other than the United States"},
			{Code: "AG ¶ 10(c)", Text: "failure to use a U.S. passport when entering or exiting the U.S."},
			{Code: "AG ¶ 10(d)", Text: "participation in foreign activities, including but not limited to: (1) assuming or attempting to assume any type of employment, position, or political office in a foreign government or military organization; and (2) otherwise acting to serve the interests of a foreign person, group, organization, or government in any way that conflicts with U.S. national security interests"},
			{Code: "AG ¶ 10(e)", Text: "using foreign citizenship to protect financial or business interests in another country in violation of U.S. law"},
			{Code: "AG ¶ 10(f)", Text: "an act of expatriation from the United States such as declaration of intent to renounce U.S. citizenship, whether through words or actions"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 11(a)", Text: "the foreign citizenship is not in conflict with U.S. national security interests"},
			{Code: "AG ¶ 11(b)", Text: "dual citizenship is based solely on parental citizenship or birth in a foreign country, and there is no evidence of foreign preference"},
			{Code: "AG ¶ 11(c)", Text: "the individual has expressed a willingness to renounce the foreign citizenship that is in conflict with U.S. national security interests"},
			{Code: "AG ¶ 11(d)", Text: "the exercise of the rights, privileges, or obligations of foreign citizenship occurred before the individual became a U.S. citizen"},
			{Code: "AG ¶ 11(e)", Text: "the exercise of the entitlements or benefits of foreign citizenship do not present a national security concern"},
			{Code: "AG ¶ 11(f)", Text: "the foreign preference, if detected, involves a foreign country, entity, or association that poses a low national security risk"},
		},
	},
	"D": {
		Code: "D",
		Name: "Sexual Behavior",
		Concern: "Sexual behavior that involves a criminal offense; reflects a lack of judgment or " +
			"discretion; or may subject the individual to undue influence of coercion, exploitation, or duress. " +
			"These issues, together or individually, may raise questions about an individual's judgment, " +
			"reliability, trustworthiness, and ability to protect classified or sensitive information.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 13(a)", Text: "sexual behavior of a criminal nature, whether or not the individual has been prosecuted"},
			{Code: "AG ¶ 13(b)", Text: "a pattern of compulsive, self-destructive, or high-risk sexual behavior that the individual is unable to stop"},
			{Code: "AG ¶ 13(c)", Text: "sexual behavior that causes an individual to be vulnerable to coercion, exploitation, or duress"},
			{Code: "AG ¶ 13(d)", Text: "sexual behavior of a public nature or that reflects lack of discretion or judgment"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 14(a)", Text: "the behavior occurred prior to or during adolescence and there is no evidence of subsequent conduct of a similar nature"},
			{Code: "AG ¶ 14(b)", Text: "the sexual behavior happened so long ago, so infrequently, or under such unusual circumstances, that it is unlikely to recur and does not cast doubt on the individual's current reliability, trustworthiness, or judgment"},
			{Code: "AG ¶ 14(c)", Text: "the behavior no longer serves as a basis for coercion, exploitation, or duress"},
			{Code: "AG ¶ 14(d)", Text: "the sexual behavior is strictly private, consensual, and discreet"},
			{Code: "AG ¶ 14(e)", Text: "the individual has successfully completed an appropriate program of treatment, or is currently enrolled in one, has demonstrated ongoing and consistent compliance with the treatment plan, and/or has received a favorable prognosis from a qualified mental health professional indicating the behavior is readily controllable with treatment"},
		},
	},
	"E": {
		Code: "E",
		Name: "Personal Conduct",
		Concern: "Conduct involving questionable judgment, lack of candor, dishonesty, or " +
			"unwillingness to comply with rules and regulations can raise questions about an individual's " +
			"reliability, trustworthiness, and ability to protect classified or sensitive information. Of special " +
			"interest is any failure to cooperate or provide truthful and candid answers during national " +
			"security investigative or adjudicative processes.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 16(a)", Text: "deliberate omission, concealment, or falsification of relevant facts from any personnel security questionnaire, personal history statement, or similar form used to conduct investigations, determine employment qualifications, award benefits or status, determine national security eligibility or trustworthiness, or award fiduciary responsibilities"},
			{Code: "AG ¶ 16(b)", Text: "deliberately providing false or misleading information; or concealing or omitting information, concerning relevant facts to an employer, investigator, security official, competent medical or mental health professional involved in making a recommendation relevant to a national security eligibility determination, or other official government representative"},
			{Code: "AG ¶ 16(c)", Text: "credible adverse information in several adjudicative issue areas that is not sufficient for an adverse determination under any other single guideline, but which, when considered as a whole, supports a whole-person assessment of questionable judgment, untrustworthiness, unreliability, lack of candor, unwillingness to comply with rules and regulations, or other characteristics indicating that the individual may not properly safeguard classified or sensitive information"},
			{Code: "AG ¶ 16(d)", Text: "credible adverse information that is not explicitly covered under any other guideline and may not be sufficient by itself for an adverse determination, but which, when combined with all available information, supports a whole-person assessment of questionable judgment, untrustworthiness, unreliability, lack of candor, unwillingness to comply with rules and regulations"},
			{Code: "AG ¶ 16(e)", Text: "personal conduct, or concealment of information about one's conduct, that creates a vulnerability to exploitation, manipulation, or duress by a foreign intelligence entity or other individual or group"},
			{Code: "AG ¶ 16(f)", Text: "violation of a written or recorded commitment made by the individual to the employer as a condition of employment"},
			{Code: "AG ¶ 16(g)", Text: "association with persons involved in criminal activity"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 17(a)", Text: "the individual made prompt, good-faith efforts to correct the omission, concealment, or falsification before being confronted with the facts"},
			{Code: "AG ¶ 17(b)", Text: "the refusal or failure to cooperate, omission, or concealment was caused or significantly contributed to by advice of legal counsel or of a person with professional responsibilities for advising or instructing the individual specifically concerning security processes"},
			{Code: "AG ¶ 17(c)", Text: "the offense is so minor, or so much time has passed, or the behavior is so infrequent, or it happened under such unique circumstances that it is unlikely to recur and does not cast doubt on the individual's reliability, trustworthiness, or good judgment"},
			{Code: "AG ¶ 17(d)", Text: "the individual has acknowledged the behavior and obtained counseling to change the behavior or taken other positive steps to alleviate the stressors, circumstances, or factors that contributed to untrustworthy, unreliable, or other inappropriate behavior, and such behavior is unlikely to recur"},
			{Code: "AG ¶ 17(e)", Text: "the individual has taken positive steps to reduce or eliminate vulnerability to exploitation, manipulation, or duress"},
			{Code: "AG ¶ 17(f)", Text: "the information was unsubstantiated or from a source of questionable reliability"},
			{Code: "AG ¶ 17(g)", Text: "association with persons involved in criminal activities was unwitting, has ceased, or occurs under circumstances that do not cast doubt upon the individual's reliability, trustworthiness, judgment, or willingness to comply with rules and regulations"},
		},
	},
	"F": {
		Code: "F",
		Name: "Financial Considerations",
		Concern: "Failure to live within one's means, satisfy debts, and meet financial obligations " +
			"may indicate poor self-control, lack of judgment, or unwillingness to abide by rules and " +
			"regulations, all of which can raise questions about an individual's reliability, trustworthiness, " +
			"and ability to protect classified or sensitive information. Financial distress can also be caused " +
			"or exacerbated by, and thus can be a possible indicator of, other issues of personnel security " +
			"concern such as excessive gambling, mental health conditions, substance misuse, or alcohol " +
			"abuse or dependence.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 19(a)", Text: "inability to satisfy debts"},
			{Code: "AG ¶ 19(b)", Text: "unwillingness to satisfy debts regardless of the ability to do so"},
			{Code: "AG ¶ 19(c)", Text: "a history of not meeting financial obligations"},
			{Code: "AG ¶ 19(d)", Text: "deceptive or illegal financial practices such as embezzlement, employee theft, check fraud, expense account fraud, mortgage fraud, filing deceptive loan statements and other intentional financial breaches of trust"},
			{Code: "AG ¶ 19(e)", Text: "consistent spending beyond one's means or frivolous or irresponsible spending, which may be indicated by excessive indebtedness, significant negative cash flow, a history of late payments or of non-payment, or other negative financial indicators"},
			{Code: "AG ¶ 19(f)", Text: "failure to file or fraudulently filing annual Federal, state, or local income tax returns or failure to pay annual Federal, state, or local income tax as required"},
			{Code: "AG ¶ 19(g)", Text: "unexplained affluence, as shown by a lifestyle or standard of living, increase in net worth, or money transfers that are inconsistent with known legal sources of income"},
			{Code: "AG ¶ 19(h)", Text: "borrowing money or engaging in significant financial transactions to fund gambling or pay gambling debts"},
			{Code: "AG ¶ 19(i)", Text: "concealing gambling losses, family conflict, or other problems caused by gambling"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 20(a)", Text: "the behavior happened so long ago, was so infrequent, or occurred under such circumstances that it is unlikely to recur and does not cast doubt on the individual's current reliability, trustworthiness, or good judgment"},
			{Code: "AG ¶ 20(b)", Text: "the conditions that resulted in the financial problem were largely beyond the person's control (e.g., loss of employment, a business downturn, unexpected medical emergency, a death, divorce or separation, clear victimization by predatory lending practices, or identity theft), and the individual acted responsibly under the circumstances"},
			{Code: "AG ¶ 20(c)", Text: "the individual has received or is receiving financial counseling for the problem from a legitimate and credible source, such as a non-profit credit counseling service, and there are clear indications that the problem is being resolved or is under control"},
			{Code: "AG ¶ 20(d)", Text: "the individual initiated and is adhering to a good-faith effort to repay overdue creditors or otherwise resolve debts"},
			{Code: "AG ¶ 20(e)", Text: "the individual has a reasonable basis to dispute the legitimacy of the past-due debt which is the cause of the problem and provides documented proof to substantiate the basis of the dispute or provides evidence of actions to resolve the issue"},
			{Code: "AG ¶ 20(f)", Text: "the affluence resulted from a legal source of income"},
			{Code: "AG ¶ 20(g)", Text: "the individual has made arrangements with the appropriate tax authority to file or pay the amount owed and is in compliance with those arrangements"},
		},
	},
	"G": {
		Code: "G",
		Name: "Alcohol Consumption",
		Concern: "Excessive alcohol consumption often leads to the exercise of questionable " +
			"judgment or the failure to control impulses, and can raise questions about an individual's " +
			"reliability and trustworthiness.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 22(a)", Text: "alcohol-related incidents away from work, such as driving while under the influence, fighting, child or spouse abuse, disturbing the peace, or other incidents of concern, regardless of the frequency of the individual's alcohol use or whether the individual has been diagnosed with alcohol use disorder"},
			{Code: "AG ¶ 22(b)", Text: "alcohol-related incidents at work, such as reporting for work or duty in an intoxicated or impaired condition, drinking on the job, or jeopardizing the welfare and safety of others, regardless of whether the individual is diagnosed with alcohol use disorder"},
			{Code: "AG ¶ 22(c)", Text: "habitual or binge consumption of alcohol to the point of impaired judgment, regardless of whether the individual is diagnosed with alcohol use disorder"},
			{Code: "AG ¶ 22(d)", Text: "diagnosis by a duly qualified medical or mental health professional (e.g., physician, clinical psychologist, psychiatrist, or licensed clinical social worker) of alcohol use disorder"},
			{Code: "AG ¶ 22(e)", Text: "the failure to follow treatment advice once diagnosed"},
			{Code: "AG ¶ 22(f)", Text: "alcohol consumption, which is not in accordance with treatment recommendations after a diagnosis of alcohol use disorder"},
			{Code: "AG ¶ 22(g)", Text: "failure to follow any court order regarding alcohol education, evaluation, treatment, or abstinence"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 23(a)", Text: "so much time has passed, or the behavior was so infrequent, or it happened under such unusual circumstances that it is unlikely to recur or does not cast doubt on the individual's current reliability, trustworthiness, or judgment"},
			{Code: "AG ¶ 23(b)", Text: "the individual acknowledges his or her pattern of maladaptive alcohol use, provides evidence of actions taken to overcome this problem, and has demonstrated a clear and established pattern of modified consumption or abstinence in accordance with treatment recommendations"},
			{Code: "AG ¶ 23(c)", Text: "the individual is participating in counseling or a treatment program, has no previous history of treatment and relapse, and is making satisfactory progress in a treatment program"},
			{Code: "AG ¶ 23(d)", Text: "the individual has successfully completed a treatment program along with any required aftercare, and has demonstrated a clear and established pattern of modified consumption or abstinence in accordance with treatment recommendations"},
		},
	},
	"H": {
		Code: "H",
		Name: "Drug Involvement and Substance Misuse",
		Concern: "The illegal use of controlled substances, to include the misuse of prescription " +
			"and non-prescription drugs, and the use of other substances that cause physical or mental " +
			"impairment or are used in a manner inconsistent with their intended purpose can raise questions " +
			"about an individual's reliability and trustworthiness, both because such behavior may lead to " +
			"physical or psychological impairment and because it raises questions about a person's ability " +
			"or willingness to comply with laws, rules, and regulations.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 25(a)", Text: "any substance misuse"},
			{Code: "AG ¶ 25(b)", Text: "testing positive for an illegal drug"},
			{Code: "AG ¶ 25(c)", Text: "illegal possession of a controlled substance, including cultivation, processing, manufacture, purchase, sale, or distribution; or possession of drug paraphernalia"},
			{Code: "AG ¶ 25(d)", Text: "diagnosis by a duly qualified medical or mental health professional (e.g., physician, clinical psychologist, psychiatrist, or licensed clinical social worker) of substance use disorder"},
			{Code: "AG ¶ 25(e)", Text: "failure to successfully complete a drug treatment program prescribed by a duly qualified medical or mental health professional"},
			{Code: "AG ¶ 25(f)", Text: "any illegal drug use while granted access to classified information or holding a sensitive position"},
			{Code: "AG ¶ 25(g)", Text: "expressed intent to continue drug involvement and substance misuse, or failure to clearly and convincingly commit to discontinue such misuse"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 26(a)", Text: "the behavior happened so long ago, was so infrequent, or happened under such circumstances that it is unlikely to recur or does not cast doubt on the individual's current reliability, trustworthiness, or good judgment"},
			{Code: "AG ¶ 26(b)", Text: "the individual acknowledges his or her drug involvement and substance misuse, provides evidence of actions taken to overcome this problem, and has established a pattern of abstinence, including, but not limited to: (1) disassociation from drug-using associates and contacts; (2) changing or avoiding the environment where drugs were used; and (3) providing a signed statement of intent to abstain from all drug involvement and substance misuse, acknowledging that any future involvement or misuse is grounds for revocation of national security eligibility"},
			{Code: "AG ¶ 26(c)", Text: "abuse of prescription drugs was after a severe or prolonged illness during which these drugs were prescribed, and abuse has since ended"},
			{Code: "AG ¶ 26(d)", Text: "satisfactory completion of a prescribed drug treatment program, including, but not limited to, rehabilitation and aftercare requirements, without recurrence of abuse, and a favorable prognosis by a duly qualified medical professional"},
		},
	},
	"I": {
		Code: "I",
		Name: "Psychological Conditions",
		Concern: "Certain emotional, mental, and personality conditions can impair judgment, " +
			"reliability, or trustworthiness. A formal diagnosis of a disorder is not required for there to be " +
			"a concern under this guideline. A duly qualified mental health professional employed by, or " +
			"acceptable to and approved by the U.S. Government, should be consulted when evaluating " +
			"potentially disqualifying and mitigating information under this guideline.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 28(a)", Text: "behavior that casts doubt on an individual's judgment, stability, reliability, or trustworthiness, not covered under any other guideline and that may indicate an emotional, mental, or personality condition, including, but not limited to, irresponsible, violent, self-harm, suicidal, paranoid, manipulative, impulsive, chronic lying, deceitful, exploitative, or bizarre behaviors"},
			{Code: "AG ¶ 28(b)", Text: "an opinion by a duly qualified mental health professional that the individual has a condition that may impair judgment, stability, reliability, or trustworthiness"},
			{Code: "AG ¶ 28(c)", Text: "voluntary or involuntary inpatient hospitalization"},
			{Code: "AG ¶ 28(d)", Text: "failure to follow a prescribed treatment plan related to a diagnosed psychological/psychiatric condition that may impair judgment, stability, reliability, or trustworthiness"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 29(a)", Text: "the identified condition is readily controllable with treatment, and the individual has demonstrated ongoing and consistent compliance with the treatment plan"},
			{Code: "AG ¶ 29(b)", Text: "the individual has voluntarily entered a counseling or treatment program for a condition that is amenable to treatment, and the individual is currently receiving counseling or treatment with a favorable prognosis by a duly qualified mental health professional"},
			{Code: "AG ¶ 29(c)", Text: "recent opinion by a duly qualified mental health professional employed by, or acceptable to and approved by, the U.S. Government that an individual's previous condition is under control or in remission, and has a low probability of recurrence or exacerbation"},
			{Code: "AG ¶ 29(d)", Text: "the past psychological/psychiatric condition was temporary, the situation has been resolved, and the individual no longer shows indications of emotional instability"},
			{Code: "AG ¶ 29(e)", Text: "there is no indication of a current problem"},
		},
	},
	"J": {
		Code: "J",
		Name: "Criminal Conduct",
		Concern: "Criminal activity creates doubt about a person's judgment, reliability, and " +
			"trustworthiness. By its very nature, it calls into question a person's ability or willingness " +
			"to comply with laws, rules, and regulations.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 31(a)", Text: "a pattern of minor offenses, any one of which on its own would be unlikely to affect a national security eligibility decision, but which in combination cast doubt on the individual's judgment, reliability, or trustworthiness"},
			{Code: "AG ¶ 31(b)", Text: "evidence (including, but not limited to, a credible allegation, an admission, and matters of official record) of criminal conduct, regardless of whether the individual was formally charged, prosecuted, or convicted"},
			{Code: "AG ¶ 31(c)", Text: "individual is currently on parole or probation"},
			{Code: "AG ¶ 31(d)", Text: "violation or revocation of parole or probation, or failure to complete a court-mandated rehabilitation program"},
			{Code: "AG ¶ 31(e)", Text: "discharge or dismissal from the Armed Forces for reasons less than 'Honorable'"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 32(a)", Text: "so much time has elapsed since the criminal behavior happened, or it happened under such unusual circumstances, that it is unlikely to recur and does not cast doubt on the individual's reliability, trustworthiness, or good judgment"},
			{Code: "AG ¶ 32(b)", Text: "the individual was pressured or coerced into committing the act and those pressures are no longer present in the person's life"},
			{Code: "AG ¶ 32(c)", Text: "no reliable evidence to support that the individual committed the offense"},
			{Code: "AG ¶ 32(d)", Text: "there is evidence of successful rehabilitation; including, but not limited to, the passage of time without recurrence of criminal activity, restitution, compliance with the terms of parole or probation, job training or higher education, good employment record, or constructive community involvement"},
		},
	},
	"K": {
		Code: "K",
		Name: "Handling Protected Information",
		Concern: "Deliberate or negligent failure to comply with rules and regulations for handling " +
			"protected information, which includes classified and other sensitive government information, " +
			"and proprietary information, raises doubt about an individual's trustworthiness, judgment, " +
			"reliability, or willingness and ability to safeguard such information, and is a serious security concern.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 34(a)", Text: "deliberate or negligent disclosure of protected information to unauthorized persons, including, but not limited to, personal or business contacts, the media, or persons present at seminars, meetings, or conferences"},
			{Code: "AG ¶ 34(b)", Text: "collecting or storing protected information in any unauthorized location"},
			{Code: "AG ¶ 34(c)", Text: "loading, drafting, editing, modifying, storing, transmitting, or otherwise handling protected information, including images, on any unauthorized equipment or medium"},
			{Code: "AG ¶ 34(d)", Text: "inappropriate efforts to obtain or view protected information outside one's need to know"},
			{Code: "AG ¶ 34(e)", Text: "copying or modifying protected information in an unauthorized manner designed to conceal or remove classification or other document control markings"},
			{Code: "AG ¶ 34(f)", Text: "viewing or downloading information from a secure system when the information is beyond the individual's need-to-know"},
			{Code: "AG ¶ 34(g)", Text: "any failure to comply with rules for the protection of classified or sensitive information"},
			{Code: "AG ¶ 34(h)", Text: "negligence or lax security practices that persist despite counseling by management"},
			{Code: "AG ¶ 34(i)", Text: "failure to comply with rules or regulations that results in damage to the national security, regardless of whether it was deliberate or negligent"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 35(a)", Text: "so much time has elapsed since the behavior, or it has happened so infrequently or under such unusual circumstances, that it is unlikely to recur and does not cast doubt on the individual's current reliability, trustworthiness, or good judgment"},
			{Code: "AG ¶ 35(b)", Text: "the individual responded favorably to counseling or remedial security training and now demonstrates a positive attitude toward the discharge of security responsibilities"},
			{Code: "AG ¶ 35(c)", Text: "the security violations were due to improper or inadequate training or unclear instructions"},
			{Code: "AG ¶ 35(d)", Text: "the violation was inadvertent, it was promptly reported, there is no evidence of compromise, and it does not suggest a pattern"},
		},
	},
	"L": {
		Code: "L",
		Name: "Outside Activities",
		Concern: "Involvement in certain types of outside employment or activities is of security " +
			"concern if it poses a conflict of interest with an individual's security responsibilities and could " +
			"create an increased risk of unauthorized disclosure of classified or sensitive information.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 37(a)", Text: "any employment or service, whether compensated or volunteer, with: (1) the government of a foreign country; (2) any foreign national, organization, or other entity; (3) a representative of any foreign interest; and (4) any foreign, domestic, or international organization or person engaged in analysis, discussion, or publication of material on intelligence, defense, foreign affairs, or protected technology"},
			{Code: "AG ¶ 37(b)", Text: "failure to report or fully disclose an outside activity when this is required"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 38(a)", Text: "evaluation of the outside employment or activity by the appropriate security or counterintelligence office indicates that it does not pose a conflict with an individual's security responsibilities or with the national security interests of the United States"},
			{Code: "AG ¶ 38(b)", Text: "the individual terminated the employment or discontinued the activity upon being notified that it was in conflict with his or her security responsibilities"},
		},
	},
	"M": {
		Code: "M",
		Name: "Use of Information Technology",
		Concern: "Failure to comply with rules, procedures, guidelines, or regulations pertaining " +
			"to information technology systems may raise security concerns about an individual's reliability " +
			"and trustworthiness, calling into question the willingness or ability to properly protect sensitive " +
			"systems, networks, and information.",
		Disqualifiers: []Condition{
			{Code: "AG ¶ 40(a)", Text: "unauthorized entry into any information technology system"},
			{Code: "AG ¶ 40(b)", Text: "unauthorized modification, destruction, or manipulation of, or denial of access to, an information technology system or any data in such a system"},
			{Code: "AG ¶ 40(c)", Text: "use of any information technology system to gain unauthorized access to another system or to a compartmented area within the same system"},
			{Code: "AG ¶ 40(d)", Text: "downloading, storing, or transmitting classified, sensitive, proprietary, or other protected information on or to any unauthorized information technology system"},
			{Code: "AG ¶ 40(e)", Text: "unauthorized use of any information technology system"},
			{Code: "AG ¶ 40(f)", Text: "introduction, removal, or duplication of hardware, firmware, software, or media to or from any information technology system when prohibited by rules, procedures, guidelines, or regulations or when otherwise not authorized"},
			{Code: "AG ¶ 40(g)", Text: "negligence or lax security practices in handling information technology that persists despite counseling by management"},
			{Code: "AG ¶ 40(h)", Text: "any misuse of information technology, whether deliberate or negligent, that results in damage to the national security"},
		},
		Mitigators: []Condition{
			{Code: "AG ¶ 41(a)", Text: "so much time has elapsed since the behavior happened, or it happened under such unusual circumstances, that it is unlikely to recur and does not cast doubt on the individual's reliability, trustworthiness, or good judgment"},
			{Code: "AG ¶ 41(b)", Text: "the misuse was minor and done solely in the interest of organizational efficiency and effectiveness"},
			{Code: "AG ¶ 41(c)", Text: "the conduct was unintentional or inadvertent and was followed by a prompt, good-faith effort to correct the situation and by notification to appropriate personnel"},
			{Code: "AG ¶ 41(d)", Text: "the misuse was due to improper or inadequate training or unclear instructions"},
		},
	},
}
