// This file is part of Gramarye.
//
// Gramarye is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gramarye is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gramarye.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the application. There is only ever
// one central log but additional instances can be created with NewLogger()
// for testing purposes or for very localised logging.
//
// Entries are made up of a tag and a detail. Consecutive entries with the
// same tag and detail are folded into a single entry with a repeat count.
//
// Logging is gated by a Permission. Use logger.Allow when logging should
// always happen.
package logger
