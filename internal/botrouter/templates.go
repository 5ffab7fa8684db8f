package botrouter

// Pre-authored marketing responses. The copy mirrors the live Automari and
// IAA Life demo decks; the chat widget renders **bold** headers and bullet
// prefixes itself, so the templates stay plain strings.

const agencyPhone = "561-201-4365"
const agencyEmail = "contactautomari@gmail.com"

const templateSupport = `**🎧 Customer Support Automation**

Automari builds AI support agents that answer your customers around the clock — no hold music, no ticket backlog.

**What our support bots handle:**
• Instant answers to the questions your team answers twenty times a day
• Smart escalation to a human the moment a conversation needs one
• Order status, returns, and account lookups wired into your existing tools
• Full conversation transcripts synced to your helpdesk

**Typical results:**
✓ 70% of tickets resolved without human touch
✓ First response time cut from hours to seconds
✓ Support costs down 40-60% within the first quarter

Want to see it against your own FAQ? Call ` + agencyPhone + ` or email ` + agencyEmail + ` and we'll set up a pilot.`

const templateEmail = `**📬 Email & Communication Automation**

Drowning in your inbox? Automari's email automation triages, drafts, and follows up so your team doesn't have to.

**What we automate:**
• Inbox triage — every inbound email classified and routed in seconds
• AI-drafted replies in your voice, queued for one-click approval
• Follow-up sequences that never forget a prospect
• Meeting scheduling handled entirely over email

**Typical results:**
✓ 10+ hours per person per week back on the calendar
✓ Zero dropped follow-ups
✓ Response times your competitors can't match

Reach us at ` + agencyPhone + ` or ` + agencyEmail + ` for a walkthrough with your own inbox.`

const templateROI = `**📈 The ROI of Automation**

Fair question — automation is an investment, and it should pay for itself fast.

**How the math usually works:**
• A typical workflow automation replaces 15-30 hours of manual work per week
• Most Automari clients break even inside 60-90 days
• After that, every automated hour is pure margin

**Where the savings come from:**
✓ Labor hours redirected from repetitive tasks to revenue work
✓ Fewer errors — no more costly manual data entry mistakes
✓ 24/7 coverage without overtime or extra headcount

We'll build the cost model for your specific processes before you spend a dollar. Call ` + agencyPhone + ` or email ` + agencyEmail + ` for a free ROI assessment.`

const templateReschedule = `**📅 Reschedule Your Consultation**

I can help you reschedule an existing consultation.

**What I need:**
• Your booking reference (format: BKG-YYYYMMDD-HHMM)
• Your new preferred date and time
• Consultation type (if changing)

The system will:
✓ Find your existing booking in the tracker
✓ Update the calendar event
✓ Send you a new confirmation email
✓ Notify the team of the change

Fill out the form below with your new details and booking reference.`

const templateCancel = `**❌ Cancel Your Consultation**

I can help you cancel a consultation booking.

**What I need:**
• Your booking reference (format: BKG-YYYYMMDD-HHMM)
• Confirmation of the cancellation

The system will:
✓ Remove the event from the calendar
✓ Update the booking status in the tracker
✓ Send a cancellation confirmation email
✓ Free up the time slot for other clients

You can always book a new consultation anytime that works better for you. Please provide your booking reference below.`

const templateScheduling = `**🗓️ Appointment Scheduling Automation**

Welcome to the consultation scheduler! I'm Emma, your AI booking assistant.

**Available consultation types:**
🎯 Initial Consultation (30 minutes) — perfect for getting started
🚀 Career Guidance (45 minutes) — deep dive into your opportunities
📚 Training Information (30 minutes) — detailed program overview
✅ Follow-up (30 minutes) — progress check and next steps

**Live automation behind this demo:**
• Real calendar integration — no double bookings
• Bookings tracked in a live spreadsheet
• Automated confirmation emails
• Booking references for easy reschedules and cancellations

Fill out the form below to schedule your consultation and watch the automation run.`

const templateInventory = `**📦 Inventory & Supply Chain Automation**

Automari keeps your stock levels, reorders, and supplier communication running on autopilot.

**What our inventory bots do:**
• Monitor stock levels across every location in real time
• Trigger reorders automatically at the thresholds you set
• Chase suppliers for confirmations and delivery updates
• Flag demand spikes before they become stockouts

**Typical results:**
✓ Stockouts down 80%
✓ Carrying costs trimmed by right-sized reorders
✓ Hours of weekly spreadsheet wrangling eliminated

Call ` + agencyPhone + ` or email ` + agencyEmail + ` to see it running against a sample catalog.`

const templateAbout = `**🏢 About IAA Life**

At IAA, we believe a successful career in the insurance industry is within reach for everyone, regardless of prior experience or working capital.

**Our mission:**
🎯 Create opportunities for individuals to take control of their careers
💰 Help people achieve financial freedom and happiness
📚 Provide comprehensive training and support
🤝 Build a strong, supportive network

**What we offer:**
✓ Comprehensive training — fundamentals, regulations, sales, and certification support
✓ Experienced mentors, peer groups, and regular workshops
✓ Unlimited earning potential with a path to building your own agency

Ready to start your journey? Book a consultation to learn more.`

const templateDemo = `**🤖 Live Workflow Demo**

You're experiencing our actual automation system, powered by n8n workflows!

**Live integrations:**
🔗 n8n workflow — real automation processing
📅 Google Calendar — live calendar management
📊 Google Sheets — real-time booking tracking
📧 Gmail — automated email confirmations
🤖 AI agent — intelligent request processing

**How it works:**
1. You submit a request
2. The n8n webhook receives the data
3. The AI agent processes and validates it
4. Calendar, spreadsheet, and email steps run automatically
5. You get real-time status updates

Try it now — book a consultation or ask about any business process.`

const templateGeneral = `**👋 Welcome to Automari**

As South Florida's leading AI automation agency, Automari transforms business operations through intelligent automation.

**Our services:**
• Customer Support Automation
• Email Management Systems
• Appointment Scheduling
• Lead Generation & Qualification

**Popular things to ask:**
• "Book a consultation" — schedule a meeting with the team
• "What's the ROI?" — see how the investment pays off
• "Show me the demo" — watch the automation work end to end

**Contact us for automation solutions:**
📞 Call: ` + agencyPhone + `
✉️ Email: ` + agencyEmail + `

Ready to automate your business processes?`
