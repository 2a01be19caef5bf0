package ai

import "fmt"

func tailoringPrompt(resumeContext, jobDescription string) string {
	return fmt.Sprintf(`
Act as an expert career coach. Your task is to help me tailor my resume for a specific job.

My current resume context is:
---
%s
---

The job description I am applying for is:
---
%s
---

Based on the job description, analyze my resume and provide specific, actionable suggestions for improvement.
Focus on highlighting relevant skills and experiences.

Please return ONLY a valid JSON object with one key: "suggestions".
The value of "suggestions" should be an array of strings, where each string is a specific, well-written bullet point suggestion.
For example: ["Rephrase 'Managed a team' to 'Led a team of 5 engineers to increase deployment frequency by 30%% using Agile methodologies', to better match the leadership skills required.", "Add a bullet point highlighting your experience with 'React' and 'TypeScript' as these are key requirements for the role."]
`, resumeContext, jobDescription)
}

func coverLetterPrompt(resumeContext, jobDescription, company, title string) string {
	return fmt.Sprintf(`
Act as an expert career coach and professional writer. Your task is to write a concise, professional, and compelling cover letter.

MY RESUME CONTEXT:
---
%s
---

THE JOB I AM APPLYING FOR:
- Company: %s
- Job Title: %s
- Job Description: %s
---

INSTRUCTIONS:
1.  Write a three-paragraph cover letter.
2.  The first paragraph should introduce me, state the position I'm applying for, and express genuine enthusiasm for the company.
3.  The second paragraph should be the core of the letter. Highlight 2-3 of my most relevant skills or projects from my resume and directly connect them to the key requirements in the job description. Use strong, action-oriented language.
4.  The final paragraph should reiterate my interest and include a clear call to action (e.g., "I am eager to discuss how my skills in...").
5.  The tone should be professional, confident, and tailored. Do not use generic phrases.
6.  Return ONLY the text of the cover letter as a single string. Do not include "Subject:", "Dear Hiring Manager,", or any sign-off like "Sincerely,".
`, resumeContext, company, title, jobDescription)
}

func interviewPrepPrompt(resumeContext, jobDescription string) string {
	return fmt.Sprintf(`
Act as a senior hiring manager preparing to interview a candidate.

THE CANDIDATE'S RESUME CONTEXT:
---
%s
---

THE JOB DESCRIPTION:
---
%s
---

INSTRUCTIONS:
1.  Based on the job description, generate a list of 5-7 likely interview questions.
2.  Include a mix of behavioral questions (e.g., "Tell me about a time when...") and technical questions relevant to the skills listed in the job description.
3.  For each question, provide 2-3 concise bullet points under a "Key Talking Points" section. These talking points should be tailored advice for the candidate, suggesting how they can connect their specific experiences from their resume to the question being asked.
4.  Return ONLY a valid JSON object with one key: "interviewPrep".
5.  The value of "interviewPrep" should be an array of objects. Each object should have two keys: "question" (a string) and "talkingPoints" (an array of strings).
`, resumeContext, jobDescription)
}
