package sys

// --- Version ---

const (
	Version     = "1.0.0"
	ReleaseDate = "2025-08-10"
	Author      = "Alpha Bot Team"
	Description = "Professional Discord Management Solution"
)

// Features lists what the current version ships, newest last.
var Features = []string{
	"Discord Management Module (announcements, messaging, role management)",
	"Time Management Module (timezone support, clock in/out system)",
	"Comprehensive Logging Module (all server activities)",
	"Professional UI with slash commands",
	"Smart user lookup without pinging",
	"Modular architecture for easy feature additions",
}

// --- Process & Infrastructure ---

const (
	MsgConfigMissingToken = "DISCORD_TOKEN is not set in .env file"

	MsgDatabaseInitSuccess = "Database initialized successfully"
	MsgDatabaseTableError  = "Failed to create table: %w"
	MsgDatabasePragmaError = "Failed to set pragma %s: %w"

	MsgStoreReady      = "Stores loaded from %s"
	MsgStoreLoadFailed = "Failed to load %s, starting empty: %v"
	MsgStoreSaveFailed = "Failed to save %s: %v"

	MsgLoaderPanicRecovered = "Recovered from panic: %v"
	MsgLoaderSyncCommands   = "Syncing commands (%s)..."
	MsgLoaderUpToDate       = "Commands are up to date (%s)"
	MsgLoaderProdFail       = "[PROD] Global registration failed: %w"
	MsgLoaderDevFail        = "[DEV] Guild registration failed: %w"
	MsgLoaderRegistered     = "Registered command: %s"
	MsgLoaderCleanup        = "Clearing commands left in guild %s"

	MsgBotStarting      = "Starting %s..."
	MsgBotReady         = "%s is ready! (ID: %s) (PID: %d) (Took: %dms)"
	MsgBotShutdown      = "Shutting down %s..."
	MsgBotRegisterFail  = "Command registration failed: %v"
	MsgBotConfigFail    = "Failed to load config: %v"
	MsgBotDatabaseFail  = "Failed to initialize database: %v"
	MsgBotClientFail    = "Failed to create client: %v"
	MsgBotGatewayFail   = "Failed to open gateway: %v"
	MsgBotFatalRecovery = "Fatal: %v"
	MsgDaemonStarting   = "Starting daemon..."
	MsgPresence         = "over the server | /help"
	MsgPresenceGuilds   = "%d servers | /help"
	MsgPresenceClocked  = "%d clocked in | /help"
	MsgPresenceUptime   = "up %s | /help"
	MsgPresenceFailed   = "Failed to update presence: %v"
	MsgPresenceRotated  = "Presence set to %q"
	MsgPresenceTitle    = "🎭 Presence Updated"
	MsgPresenceOn       = "The bot activity will now rotate through server statistics."
	MsgPresenceOff      = "Rotation is off. The default activity is back."
	MsgPresenceError    = "The presence setting could not be saved. Please try again."
	MsgReplyFailed      = "Failed to answer /%s: %v"
)

// --- Shared Notices ---

const (
	MsgErrorTitle           = "Error"
	MsgPermissionErrorTitle = "Permission Error"
	MsgAccessDeniedTitle    = "Access Denied"
	MsgAccessDeniedAdmin    = "You need administrator permissions to use this command."
	MsgAccessDeniedLogs     = "You need administrator permissions to set up logging."
	MsgAccessDeniedRoles    = "You need manage roles permissions to use this command."
	MsgGuildOnlyTitle       = "Server Only"
	MsgGuildOnlyBody        = "This command can only be used inside a server."

	MsgUserNotFoundTitle   = "User Not Found"
	MsgUserNotFoundBody    = "Could not find a user matching '%s'."
	MsgMemberLookupFailed  = "Member lookup for %q failed: %v"
	MsgMemberLookupGeneric = "Could not load the member list. Please try again."

	MsgChannelNotFoundTitle = "Channel Not Found"
	MsgChannelNotFoundBody  = "The specified announcement channel could not be found."

	MsgFieldServer           = "Server"
	MsgFieldSentBy           = "Sent by"
	MsgFieldTime             = "Time"
	MsgFieldDate             = "Date"
	MsgFieldTimezone         = "Timezone"
	MsgFieldDiscordTimestamp = "Discord Timestamp"
	MsgFieldCurrentUTC       = "Current UTC Time"
	MsgFieldHowToSet         = "How to Set Your Timezone"
	MsgFieldRightNow         = "🕐 Right Now"
	MsgFieldYourTimezone     = "🌐 Your Timezone"
	MsgFieldAdditionalInfo   = "📅 Additional Info"
	MsgFieldShareTime        = "🔗 Share This Time"
	MsgFieldWhatToDo         = "What to do"
	MsgFieldHowToUse         = "💡 How to Use"
	MsgFieldUserID           = "User ID"
	MsgFieldChannelID        = "Channel ID"
	MsgFieldRoleID           = "Role ID"
	MsgFieldAttachments      = "Attachments"
	MsgFieldBefore           = "Before"
	MsgFieldAfter            = "After"
	MsgFieldUsersAffected    = "Users Affected"
)

// --- Audit ---

const (
	MsgAuditAnnounce    = "%s posted an announcement to %s"
	MsgAuditDM          = "%s sent a DM to %s"
	MsgAuditMassDM      = "%s sent a mass DM to role %s (%d targets)"
	MsgAuditRoleAdded   = "%s added role %s to %s"
	MsgAuditRoleRemoved = "%s removed role %s from %s"
	MsgAuditLogsSetup   = "%s set up logging in guild %s"
)

// --- Announcements & Direct Messages ---

const (
	MsgAnnounceTitle          = "📢 Announcement"
	MsgAnnounceFooter         = "Posted by %s"
	MsgAnnounceNoChannelTitle = "No Channel Set"
	MsgAnnounceNoChannelBody  = "Please specify a channel or set ANNOUNCEMENT_CHANNEL_ID in config."
	MsgAnnounceForbidden      = "I don't have permission to send messages in that channel."
	MsgAnnounceFailed         = "Failed to post announcement to %s: %v"
	MsgAnnounceGeneric        = "Failed to send announcement. Please try again."
	MsgAnnounceSentTitle      = "Announcement Sent"
	MsgAnnounceSentBody       = "Your announcement has been posted to <#%s>"

	MsgDMTitle            = "📨 Message from Server Staff"
	MsgStaffMessageFooter = "This message was sent through Alpha Bot"
	MsgDMForbiddenTitle   = "Cannot Send DM"
	MsgDMForbiddenBody    = "%s has DMs disabled or blocked the bot."
	MsgDMFailed           = "Failed to DM %s: %v"
	MsgDMGeneric          = "Failed to send message. Please try again."
	MsgDMSentTitle        = "Message Sent"
	MsgDMSentBody         = "Your message has been sent to %s"

	MsgMassDMNoMembersTitle = "No Members"
	MsgMassDMNoMembersBody  = "No members found with the role %s."
	MsgMassDMConfirmTitle   = "Mass DM Confirmation"
	MsgMassDMConfirmBody    = "You are about to send a message to **%d** members with the role **%s**.\n\nThis action cannot be undone. Are you sure?"
	MsgMassDMConfirmLabel   = "Confirm"
	MsgMassDMCancelLabel    = "Cancel"
	MsgMassDMSendingTitle   = "Sending Messages"
	MsgMassDMSendingBody    = "Starting mass DM operation..."
	MsgMassDMCancelledTitle = "Cancelled"
	MsgMassDMCancelledBody  = "Mass DM operation was cancelled."
	MsgMassDMExpiredTitle   = "Timed Out"
	MsgMassDMExpiredBody    = "Mass DM confirmation timed out. No messages were sent."
	MsgMassDMNotYours       = "Only the person who started this mass DM can answer it."
	MsgMassDMTitle          = "📨 Message to %s Members"
	MsgMassDMCompleteTitle  = "Mass DM Complete"
	MsgMassDMCompleteBody   = "**Successful:** %d\n**Failed:** %d\n**Total:** %d"

	MsgBroadcastStarting   = "Sending to %d members of %s"
	MsgBroadcastSendFailed = "Could not DM %s: %v"
	MsgBroadcastFinished   = "Broadcast finished: %d sent, %d failed, %d total"
)

// --- Roles ---

const (
	MsgRoleCannotModify    = "You cannot modify this user's roles."
	MsgRoleTooHighTitle    = "Role Too High"
	MsgRoleTooHighBody     = "You cannot assign roles higher than or equal to your highest role."
	MsgRoleAlreadyHasTitle = "Already Has Role"
	MsgRoleAlreadyHasBody  = "%s already has the role %s."
	MsgRoleMissingTitle    = "Doesn't Have Role"
	MsgRoleMissingBody     = "%s doesn't have the role %s."
	MsgRoleAddReason       = "Added by %s via Alpha Bot"
	MsgRoleRemoveReason    = "Removed by %s via Alpha Bot"
	MsgRoleForbidden       = "I don't have permission to manage this role."
	MsgRoleChangeFailed    = "Failed to change role %s on %s: %v"
	MsgRoleAddGeneric      = "Failed to add role. Please try again."
	MsgRoleRemoveGeneric   = "Failed to remove role. Please try again."
	MsgRoleAddedTitle      = "Role Added"
	MsgRoleAddedBody       = "Successfully added **%s** to %s"
	MsgRoleRemovedTitle    = "Role Removed"
	MsgRoleRemovedBody     = "Successfully removed **%s** from %s"
)

// --- Logging Setup ---

const (
	MsgLogsSetupReason     = "Logging setup requested by %s"
	MsgLogsChannelExisting = "✅ %s (existing)"
	MsgLogsChannelCreated  = "✅ %s (created)"
	MsgLogsChannelTopic    = "Automated logging for %s"
	MsgLogsSetupTitle      = "🎉 Logging Setup Complete"
	MsgLogsSetupBody       = "**Category:** <#%s>\n\n%s\n\n**Features Enabled:**\n" +
		"• Message logging (edit, delete, bulk delete)\n" +
		"• Member logging (join, leave, nickname changes)\n" +
		"• Voice logging (join, leave, channel moves)\n" +
		"• Moderation logging (bans, unbans)\n" +
		"• Server logging (channel/role changes)\n\n" +
		"All server activity will now be logged automatically!"
	MsgLogsSetupForbidden  = "I don't have permission to create channels or categories."
	MsgLogsSetupFailed     = "Logging setup failed: %v"
	MsgLogsSetupErrorTitle = "Setup Error"
	MsgLogsSetupGeneric    = "An error occurred while setting up logging. Please try again."

	MsgLogsNotConfiguredTitle = "⚠️ Logging Not Configured"
	MsgLogsNotConfiguredBody  = "Logging is not set up for this server.\n\nUse `/setup-logs` to configure automatic logging."
	MsgLogsStatusTitle        = "📋 Logging Status"
	MsgLogsStatusOK           = "✅ **%s**: <#%s>"
	MsgLogsStatusMissing      = "❌ **%s**: Channel not found"
	MsgLogsActiveFeatures     = "Active Features"
	MsgLogsActiveFeaturesBody = "• Message logging\n• Member activity\n• Voice activity\n• Moderation actions\n• Server changes"
)

// --- Log Records ---

const (
	MsgLogForwardFailed    = "Failed to forward %s record in guild %s: %v"
	MsgLogBulkDecodeFailed = "Failed to decode bulk delete payload: %v"
	MsgLogBanFetchFailed   = "Failed to fetch ban for %s: %v"

	MsgLogNone      = "None"
	MsgLogUnknown   = "Unknown"
	MsgLogNoContent = "*No content*"
	MsgLogNoReason  = "No reason provided"
	MsgLogAndMore   = "\n... and %d more"

	MsgLogMessageDeletedTitle = "🗑️ Message Deleted"
	MsgLogMessageDeletedBody  = "**Channel:** %s\n**Content:** %s\n**Message ID:** %s"
	MsgLogMessageEditedTitle  = "✏️ Message Edited"
	MsgLogMessageEditedBody   = "**Channel:** %s\n**Message ID:** %s\n**[Jump to Message](%s)**"
	MsgLogBulkDeleteTitle     = "🗑️ Bulk Message Delete"
	MsgLogBulkDeleteBody      = "**%d** messages were deleted from %s"

	MsgLogMemberJoinedTitle = "📥 Member Joined"
	MsgLogMemberJoinedBody  = "**Account Created:** %s\n**Member #%d**"
	MsgLogMemberLeftTitle   = "📤 Member Left"
	MsgLogMemberLeftBody    = "**Joined Server:** %s\n**Roles:** %s"
	MsgLogNicknameTitle     = "🏷️ Nickname Changed"
	MsgLogNicknameBody      = "**Before:** %s\n**After:** %s"
	MsgLogRolesUpdatedTitle = "🎭 Roles Updated"
	MsgLogRolesAdded        = "**Added:** %s"
	MsgLogRolesRemoved      = "**Removed:** %s"

	MsgLogVoiceJoinTitle  = "🔊 Voice Join"
	MsgLogVoiceLeaveTitle = "🔇 Voice Leave"
	MsgLogVoiceMoveTitle  = "🔄 Voice Move"
	MsgLogVoicePlaceBody  = "**Channel:** %s\n**Category:** %s"
	MsgLogVoiceMoveBody   = "**From:** %s\n**To:** %s"

	MsgLogBannedTitle   = "🔨 Member Banned"
	MsgLogBannedBody    = "**User:** %s\n**Reason:** %s"
	MsgLogUnbannedTitle = "🔓 Member Unbanned"
	MsgLogUnbannedBody  = "**User:** %s"

	MsgLogChannelCreatedTitle = "📝 Channel Created"
	MsgLogChannelDeletedTitle = "🗑️ Channel Deleted"
	MsgLogChannelBody         = "**Channel:** %s\n**Type:** %s\n**Category:** %s"
	MsgLogRoleCreatedTitle    = "🎭 Role Created"
	MsgLogRoleCreatedBody     = "**Role:** %s\n**Color:** %s\n**Hoisted:** %s\n**Mentionable:** %s"
	MsgLogRoleDeletedTitle    = "🗑️ Role Deleted"
	MsgLogRoleDeletedBody     = "**Role:** %s\n**Color:** %s\n**Members:** %d"
)

// --- Timezones ---

const (
	MsgTimezoneInvalidTitle   = "Invalid Timezone"
	MsgTimezoneInvalidBody    = "'%s' is not a valid timezone.\nExamples: `America/New_York`, `Europe/London`, `Asia/Tokyo`\nUse `/list-timezones` to see common timezones."
	MsgTimezoneAmbiguousTitle = "Did You Mean?"
	MsgTimezoneAmbiguousBody  = "'%s' matches more than one timezone:\n%s\n\nRun the command again with one of these names."
	MsgTimezoneSetTitle       = "Timezone Set"
	MsgTimezoneSetBody        = "Your timezone has been set to **%s**\nCurrent time: **%s**"
	MsgTimezoneSaved          = "%s set timezone %s"
	MsgTimezoneDropped        = "Dropped invalid timezone %q for %s"
	MsgNaturalTimeInitFail    = "Failed to start natural time parser: %v"

	MsgNoTimezoneTitle   = "No Timezone Set"
	MsgNoTimezoneBody    = "Please set your timezone first using `/set-timezone` or specify a timezone in this command."
	MsgCurrentTimeTitle  = "🕐 Current Time"
	MsgCurrentTimeFooter = "Use /set-timezone to set your default timezone"
	MsgConversionTitle   = "⏰ Time Conversion"
	MsgConversionBody    = "**Original:** %s (%s)\n**Converted:** %s\n**Timezone:** %s"
	MsgTimeFormatTitle   = "Invalid Time Format"
	MsgTimeFormatBody    = "Please use format: `HH:MM` or `YYYY-MM-DD HH:MM`\nExample: `14:30` or `2024-12-25 14:30`"

	MsgMyTimezoneUnsetTitle = "⏰ Your Timezone Info"
	MsgMyTimezoneUnsetBody  = "You haven't set your timezone yet!"
	MsgMyTimezoneHowTo      = "Use `/set-timezone` followed by your timezone:\n\n" +
		"🇺🇸 `/set-timezone America/New_York`\n" +
		"🇬🇧 `/set-timezone Europe/London`\n" +
		"🇯🇵 `/set-timezone Asia/Tokyo`\n\n" +
		"Use `/list-timezones` to see more options!"
	MsgMyTimezoneTitle      = "🌍 Your Current Time"
	MsgMyTimezoneAdditional = "Week %d of the year\nDay %d of %d"
	MsgMyTimezoneFooter     = "💡 Use /set-timezone to change • This message is only visible to you"
	MsgMyTimezoneErrorTitle = "❌ Timezone Error"
	MsgMyTimezoneErrorBody  = "Your saved timezone '%s' is no longer valid."
	MsgMyTimezoneWhatToDo   = "Please set a new timezone using `/set-timezone`\nUse `/list-timezones` to see available options."

	MsgRegionsTitle        = "🌍 All Timezone Regions"
	MsgRegionsBody         = "Choose a region to see detailed timezone list, or use the command with a region filter."
	MsgRegionsEntry        = "%d timezones available\nUse `/list-timezones region:%s`"
	MsgRegionTitle         = "%s Timezones"
	MsgRegionBody          = "Copy and paste the timezone name (before the dash) into `/set-timezone`"
	MsgRegionFieldSingle   = "Available Timezones"
	MsgRegionFieldNumbered = "Timezones %d"
	MsgTimezoneHowToUse    = "1. Find your timezone in the list\n" +
		"2. Copy the name before the dash (e.g., `America/New_York`)\n" +
		"3. Use `/set-timezone America/New_York`\n" +
		"4. Then use `/mytimezone` to see your time!"
	MsgTimezoneListFooter = "Need help? The timezone name is always the part before the ' - ' dash"
)

// --- Clock ---

const (
	MsgClockedInTitle        = "🕐 Clocked In"
	MsgClockedInBody         = "**Time:** %s\n**Date:** %s\n\nYou'll be reminded after %d minutes if you're still clocked in."
	MsgAlreadyClockedInTitle = "Already Clocked In"
	MsgAlreadyClockedInBody  = "You're already clocked in since %s\nUse `/clockout` to end your current session."
	MsgNotClockedInTitle     = "Not Clocked In"
	MsgNotClockedInBody      = "You're not currently clocked in. Use `/clockin` to start a session."
	MsgClockOutTitle         = "🕐 Clocked Out"
	MsgClockedOutBody        = "**Clock In:** %s\n**Clock Out:** %s\n**Duration:** %s\n**Date:** %s"
	MsgClockStoppedBody      = "You have been clocked out.\nTotal session: %s"
	MsgClockStatusTitle      = "🕐 Clock Status"
	MsgClockStatusIdle       = "You are currently **not clocked in**.\n\nUse `/clockin` to start a work session."
	MsgClockStatusActive     = "You are currently **clocked in**.\n\n**Started:** %s\n**Duration:** %s\n**Timezone:** %s"

	MsgClockReminderTitle = "⏰ Clock Out Reminder"
	MsgClockReminderBody  = "You've been clocked in for %d minutes!\n\n" +
		"React with %s to continue working\n" +
		"React with %s to clock out now\n\n" +
		"If you don't respond, you'll be automatically clocked out."
	MsgClockContinueTitle = "✅ Continuing Work"
	MsgClockContinueBody  = "Your work session continues. Timer has been reset."
	MsgClockAutoOutTitle  = "⏰ Auto Clocked Out"
	MsgClockAutoOutBody   = "You've been automatically clocked out due to inactivity.\nTotal session: %s"

	MsgClockInLogged            = "%s clocked in (%s)"
	MsgClockOutLogged           = "%s clocked out after %s"
	MsgClockReminderSent        = "Reminder sent to %s"
	MsgClockReminderChannelFail = "Reminder for %s could not be posted in %s, trying DM: %v"
	MsgClockReminderDMFail      = "Reminder for %s could not be delivered: %v"
	MsgClockReactionFail        = "Failed to add %s reaction: %v"
	MsgClockReminderEditFail    = "Failed to update reminder %s: %v"
	MsgClockAutoOut             = "%s auto clocked out after %s"
	MsgClockSweeperShutdown     = "Clock sweeper stopped with %d open sessions"
)

// --- Help & Info ---

const (
	MsgHelpTitle           = "🤖 Alpha Discord Bot - Help & Commands"
	MsgHelpBody            = "**Version:** " + Version + " | **" + Description + "**"
	MsgHelpManagementTitle = "🎛️ Discord Management"
	MsgHelpManagement      = "`/announce <message> [channel]` - Send professional announcements\n" +
		"`/dm <user> <message>` - Direct message a user via bot\n" +
		"`/mass-dm <role> <message>` - Message all users with a role\n" +
		"`/add-role <user> <role>` - Add role to user (by display name)\n" +
		"`/remove-role <user> <role>` - Remove role from user"
	MsgHelpTimeTitle = "⏰ Time Management"
	MsgHelpTime      = "`/set-timezone <timezone>` - Set your personal timezone\n" +
		"`/mytimezone` - Show your current time and timezone\n" +
		"`/time [timezone] [time]` - Get current time or convert times\n" +
		"`/list-timezones [region]` - Browse timezones by region\n" +
		"`/clockin` - Start a work session\n" +
		"`/clockout` - End your work session\n" +
		"`/status` - Check your current clock status"
	MsgHelpLoggingTitle = "📋 Server Logging"
	MsgHelpLogging      = "`/setup-logs` - Automatically set up all logging channels\n" +
		"`/log-status` - Check current logging configuration"
	MsgHelpInfoTitle = "ℹ️ Bot Information"
	MsgHelpInfo      = "`/help` - Show this help message\n" +
		"`/info` - Show detailed bot information\n" +
		"`/version` - Show version and changelog\n" +
		"`/ping` - Check bot latency"
	MsgHelpFeaturesTitle = "🔗 Key Features"
	MsgHelpFeatures      = "• **Smart User Lookup** - Find users by display name (no pinging!)\n" +
		"• **Comprehensive Logging** - Track all server activity\n" +
		"• **Timezone Intelligence** - Local time support\n" +
		"• **Interactive Elements** - Buttons, reactions, confirmations"
	MsgHelpFooter = "Use slash commands (/) for all interactions"

	MsgInfoTitle            = "🤖 Alpha Discord Bot - Information"
	MsgInfoStatsTitle       = "📊 Statistics"
	MsgInfoStats            = "**Servers:** %d\n**Users:** %d\n**Commands:** %d\n**Up since:** <t:%d:R>"
	MsgInfoVersionTitle     = "🏷️ Version Info"
	MsgInfoVersion          = "**Version:** %s\n**Released:** %s\n**Author:** %s\n**Language:** Go"
	MsgInfoTechTitle        = "⚙️ Technical"
	MsgInfoTech             = "**Library:** disgo\n**Commands:** Slash Commands\n**Storage:** JSON Files + SQLite"
	MsgInfoFeaturesTitle    = "✨ Core Features"
	MsgInfoPermissionsTitle = "🔐 Required Permissions"
	MsgInfoPermissions      = "• Send Messages & Use Slash Commands\n" +
		"• Manage Roles & Channels\n" +
		"• Read Message History & Add Reactions\n" +
		"• View Audit Log & Ban Members"
	MsgInfoFooter = "Alpha Bot v%s • Professional Discord Management"

	MsgVersionTitle         = "🏷️ Alpha Discord Bot v%s"
	MsgVersionBody          = "**%s**\n\nReleased: **%s**"
	MsgVersionFeaturesTitle = "🎯 Features in This Version"
	MsgVersionNewTitle      = "🆕 What's New in v%s"
	MsgVersionNew           = "• **Initial Release** - All core functionality implemented\n" +
		"• **Smart User Lookup** - No more pinging required\n" +
		"• **Comprehensive Logging** - Track everything automatically\n" +
		"• **Timezone Support** - Local time for everyone"
	MsgVersionDevTitle       = "🔧 Development"
	MsgVersionDev            = "**Author:** %s\n**Library:** disgo"
	MsgVersionResourcesTitle = "📚 Resources"
	MsgVersionResources      = "**Commands:** `/help`\n**Bot Info:** `/info`"
	MsgVersionFooter         = "Thank you for using Alpha Discord Bot!"

	MsgPingTitle            = "🏓 Pong!"
	MsgPingBody             = "**Gateway Latency:** %dms\n**Round Trip:** %dms\n**Bot Status:** %s"
	MsgPingOnline           = "🟢 Online"
	MsgPingStarting         = "🔴 Starting..."
	MsgPingPerformanceTitle = "📊 Performance"
	MsgPingPerformance      = "**Guilds:** %d\n**Commands:** %d"
	MsgPingRefresh          = "🔄 Refresh"
)
